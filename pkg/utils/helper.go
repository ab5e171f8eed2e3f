package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// GenerateBookingID creates a booking reference for callers that do not supply one.
// Format: FB-YYYYMMDD-XXXXXXXX
func GenerateBookingID() string {
	datePart := time.Now().Format("20060102")
	randomPart := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])

	return fmt.Sprintf("FB-%s-%s", datePart, randomPart)
}

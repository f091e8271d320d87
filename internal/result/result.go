// Package result decodes the outcome of an operation performed before the navigation shell was
// launched, so it can be shown as a notification on startup.
package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"
)

var (
	errResultRead   = errors.New("failed to read operation result")
	errResultDecode = errors.New("failed to decode operation result")
)

// Code is the overall status of an operation.
type Code int

const (
	CodeOK Code = iota
	CodeWarning
	CodeError
	CodeCancelled
)

type LogLevel string

const (
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

type LogEntry struct {
	Level   LogLevel `json:"level"`
	Message string   `json:"message"`
}

// OperationResult is the serialised outcome of an operation. It renders its own notification.
type OperationResult struct {
	Operation string     `json:"operation"`
	Code      Code       `json:"code"`
	Count     int        `json:"count"`
	Log       []LogEntry `json:"log"`
}

func (r OperationResult) Success() bool {
	return r.Code == CodeOK || r.Code == CodeWarning
}

// Notification is the single line message shown for the result.
func (r OperationResult) Notification() string {
	operation := r.Operation
	if operation == "" {
		operation = "Operation"
	} else {
		first, size := utf8.DecodeRuneInString(operation)
		operation = string(unicode.ToUpper(first)) + operation[size:]
	}

	switch r.Code {
	case CodeOK:
		if r.Count > 0 {
			return fmt.Sprintf("%s successful (%d)", operation, r.Count)
		}

		return operation + " successful"
	case CodeWarning:
		return fmt.Sprintf("%s finished with warnings: %s", operation, r.lastMessage(LevelWarn))
	case CodeCancelled:
		return operation + " cancelled"
	default:
		if msg := r.lastMessage(LevelError); msg != "" {
			return fmt.Sprintf("%s failed: %s", operation, msg)
		}

		return operation + " failed"
	}
}

func (r OperationResult) lastMessage(level LogLevel) string {
	for i := len(r.Log) - 1; i >= 0; i-- {
		if r.Log[i].Level == level {
			return r.Log[i].Message
		}
	}

	return ""
}

func Decode(reader io.Reader) (OperationResult, error) {
	var result OperationResult
	if err := json.NewDecoder(reader).Decode(&result); err != nil {
		return OperationResult{}, errors.Join(err, errResultDecode)
	}

	if result.Code < CodeOK || result.Code > CodeCancelled {
		return OperationResult{}, fmt.Errorf("%w: unknown code %d", errResultDecode, result.Code)
	}

	return result, nil
}

// Load reads a result from a json file.
func Load(path string) (OperationResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return OperationResult{}, errors.Join(err, errResultRead)
	}
	defer file.Close()

	return Decode(file)
}

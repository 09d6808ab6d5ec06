package utils

import (
	"log"
	"strings"
)

// LogEvent writes one "[MODULE] action=... request_id=... msg=..." line.
// Callers pass ids and counts only; guest names never reach the log.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

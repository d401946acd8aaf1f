package helper

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber builds the public order code:
// PO-<base36 millisecond timestamp, upper>-<8 random hex chars>.
// The random tail keeps numbers unique when two carts land on the
// same millisecond.
func GenerateOrderNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return "PO-" + ts + "-" + suffix
}

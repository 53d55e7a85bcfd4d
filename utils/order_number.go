package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenOrderNumber menghasilkan nomor pesanan unik, contoh: RC-1735689600000-3F9A1C2B4
func GenOrderNumber(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:9]
	return fmt.Sprintf("RC-%d-%s", t.UnixMilli(), suffix)
}

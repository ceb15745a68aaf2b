package advisory

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewDeviceID генерирует идентификатор вида device_<unix-millis>_<random>.
// Нужна только практическая уникальность.
func NewDeviceID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("device_%d_%s", time.Now().UnixMilli(), random)
}

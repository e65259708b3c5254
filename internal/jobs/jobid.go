package jobs

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pagemark/pagemark/models"
)

// NewJobID builds a job identifier in the form <type>-<unix-millis>-<random>.
// The random tail keeps ids unique when two triggers land in the same
// millisecond.
func NewJobID(jobType models.JobType) string {
	return fmt.Sprintf("%s-%d-%s", jobType, time.Now().UnixMilli(), uuid.NewString()[:8])
}

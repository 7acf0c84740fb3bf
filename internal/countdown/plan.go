package countdown

import (
	"fmt"
	"math"
	"time"
)

// MaxStep is the largest step whose duration fits in a time.Duration.
const MaxStep = math.MaxInt64 / int64(time.Second)

// Plan is the immutable description of one countdown run.
type Plan struct {
	TotalSeconds uint32
	Prefix       string
	Ending       string
	Step         int
	Path         string
	Verbose      bool
}

func (p Plan) Validate() error {
	if p.Step < 1 || int64(p.Step) > MaxStep {
		return fmt.Errorf("%w: got %d", ErrInvalidStep, p.Step)
	}
	return nil
}

func (p Plan) StepDuration() time.Duration {
	return time.Duration(p.Step) * time.Second
}

// Line renders the progress line for the given remaining seconds.
func (p Plan) Line(remaining int64) string {
	return Line(p.Prefix, remaining)
}

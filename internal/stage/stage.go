// Package stage defines the three pipeline stages, the fixed-order plan
// built from the stage flags, and the per-stage precondition checks.
package stage

import "hogpipe/internal/config"

// Stage is one independently toggleable unit of the pipeline.
type Stage int

const (
	// None marks errors that are not tied to a particular stage.
	None Stage = iota - 1

	Partition
	ExtractFeatures
	Classify
)

// String returns the short stage name used in flags and logs.
func (s Stage) String() string {
	switch s {
	case Partition:
		return "partition"
	case ExtractFeatures:
		return "extract-features"
	case Classify:
		return "classify"
	}
	return "configuration"
}

// Label returns the user-facing action description for the stage.
func (s Stage) Label() string {
	switch s {
	case Partition:
		return "Partition dataset"
	case ExtractFeatures:
		return "Extract HoG features"
	case Classify:
		return "Classify images"
	}
	return "Configuration"
}

// Plan builds the ordered stage plan from the stage flags. Stages always
// execute Partition, ExtractFeatures, Classify, regardless of the order the
// flags were supplied on the command line. No flags set yields an empty
// plan, which is a valid "report configuration only" invocation.
func Plan(cfg config.Model) []Stage {
	var plan []Stage
	if cfg.DoPartition {
		plan = append(plan, Partition)
	}
	if cfg.DoExtract {
		plan = append(plan, ExtractFeatures)
	}
	if cfg.DoClassify {
		plan = append(plan, Classify)
	}
	return plan
}

package paths

import "hogpipe/internal/config"

// External tool filenames, fixed under <project>/<lib>.
const (
	PartitionTool = "partition.sh"
	FeatureTool   = "hogs.sh"
	ScoreTool     = "score.sh"

	featureCSV = "hogs.csv"
	summaryCSV = "summary.csv"
)

// Layout holds every derived location for one invocation. It is computed
// once, after configuration resolution, and consumed read-only by the
// pipeline runner.
type Layout struct {
	// Destination is the keyword+percentage dataset subgroup identifier,
	// e.g. "disc80".
	Destination string

	// DataRoot and LibRoot are the resolved data and tool roots.
	DataRoot string
	LibRoot  string

	// FeaturePattern is the dataset-relative glob prefix for result
	// directories; FeatureGlob is the same pattern anchored at DataRoot.
	// Both are empty when no dataset is configured.
	FeaturePattern string
	FeatureGlob    string

	// ImageDir is the partitioned image directory feature extraction reads;
	// FeatureCSV is the descriptor file it writes.
	ImageDir   string
	FeatureCSV string

	// SummaryFile is the shared scoring summary the classify stage appends to.
	SummaryFile string
}

// NewLayout derives all locations from the effective configuration. The only
// failure mode is an invalid training fraction, which is a validation
// concern: a nonsensical fraction must never become a destination name.
func NewLayout(cfg config.Model) (*Layout, error) {
	destination, err := Destination(cfg.Keyword, cfg.Fraction)
	if err != nil {
		return nil, err
	}

	l := &Layout{
		Destination: destination,
		DataRoot:    Join(cfg.ProjectPath, cfg.DataPath),
		LibRoot:     Join(cfg.ProjectPath, cfg.LibPath),
	}
	l.FeaturePattern = FeaturePattern(cfg.Dataset, destination, cfg.Cells, cfg.Bins)
	if l.FeaturePattern != "" {
		l.FeatureGlob = Join(l.DataRoot, l.FeaturePattern)
	}
	if cfg.Dataset != "" {
		l.ImageDir = Join(l.DataRoot, cfg.Dataset, destination)
		l.SummaryFile = Join(l.DataRoot, cfg.Dataset, summaryCSV)
	}
	if l.FeatureGlob != "" {
		l.FeatureCSV = Join(l.FeatureGlob, featureCSV)
	}
	return l, nil
}

// Tool returns the full path of an external tool under the lib root.
func (l *Layout) Tool(name string) string {
	return Join(l.LibRoot, name)
}

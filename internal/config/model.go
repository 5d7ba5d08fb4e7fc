package config

// Configuration file keys. The file is a flat KEY=value list; these are the
// only keys the resolver consults.
const (
	KeyProjectPath = "PROJECTPATH"
	KeyDataPath    = "DATAPATH"
	KeyLibPath     = "LIBPATH"
	KeyCells       = "CELLS"
	KeyBins        = "BINS"
	KeyDataset     = "DATASET"
	KeyKeyword     = "KEYWORD"
	KeyFraction    = "FRACTION"
)

// fileKeys is the resolution order for the keyed fields. Order only affects
// iteration in helpers, not precedence.
var fileKeys = []string{
	KeyProjectPath,
	KeyDataPath,
	KeyLibPath,
	KeyCells,
	KeyBins,
	KeyDataset,
	KeyKeyword,
	KeyFraction,
}

// Values is a sparse configuration layer: a key is either present with a
// value or absent entirely. Presence is what gives a layer precedence.
type Values map[string]string

// Model is the resolved, effective configuration for one invocation. It is
// constructed once by Resolve and owned read-only by every downstream
// component; nothing mutates it after resolution.
//
// Cells, Bins and Fraction are carried as text: the resolver never
// interprets them (cells and bins admit the literal "*" wildcard, and
// fraction is validated at derivation time, not here).
type Model struct {
	ProjectPath string
	DataPath    string
	LibPath     string
	Cells       string
	Bins        string
	Dataset     string
	Keyword     string
	Fraction    string

	// LabelFile is only settable from the command line; the configuration
	// file has no key for it.
	LabelFile string

	DryRun bool

	DoPartition bool
	DoExtract   bool
	DoClassify  bool
}

// Overrides is the command-line layer. Values holds the keyed fields the
// user explicitly set (collected via flag.Visit, so an untouched flag never
// shadows a file value). The booleans and LabelFile have no file-layer
// counterpart, so plain zero values are safe.
type Overrides struct {
	Values    Values
	LabelFile string

	DryRun      bool
	DoPartition bool
	DoExtract   bool
	DoClassify  bool
}

// Defaults returns the built-in lowest-precedence layer.
func Defaults() Values {
	return Values{
		KeyCells:    "8",
		KeyBins:     "8",
		KeyKeyword:  "disc",
		KeyFraction: "0.80",
	}
}

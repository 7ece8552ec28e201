package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultCasesPath is the default case root directory, relative to the project
	DefaultCasesPath = "cases"
	// DefaultRootLabel is the display label for the hierarchy root
	DefaultRootLabel = "cases"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "run-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = ".smt"
	// DefaultWorkers is the default number of workers
	DefaultWorkers = 4
	// DefaultProvider is the mutation provider used when a case's settings
	// omit one
	DefaultProvider = "identity"
)

// Default role file names within a case directory. A directory is a leaf case
// iff it directly contains all four.
const (
	DefaultOriginalFile = "original.txt"
	DefaultExpectedFile = "expected.txt"
	DefaultActualFile   = "actual.txt"
	DefaultSettingsFile = "settings.yaml"
)

package pipeline

import "hogpipe/internal/paths"

// Command builders, one per stage. Each produces the exact argument contract
// of its external tool.

// partitionCommand invokes the partition tool:
//
//	partition.sh <keyword> <labelFile> <fraction>
func (r *Runner) partitionCommand() Command {
	return Command{
		Path: r.layout.Tool(paths.PartitionTool),
		Args: []string{r.cfg.Keyword, r.cfg.LabelFile, r.cfg.Fraction},
	}
}

// extractCommand invokes the feature extraction tool:
//
//	hogs.sh <imageDir> <cells> <bins> <outputCsv> <classList>
//
// The class list is the same label file the partition stage consumes.
func (r *Runner) extractCommand() Command {
	return Command{
		Path: r.layout.Tool(paths.FeatureTool),
		Args: []string{r.layout.ImageDir, r.cfg.Cells, r.cfg.Bins, r.layout.FeatureCSV, r.cfg.LabelFile},
	}
}

// scoreCommand invokes the scoring tool for one result directory:
//
//	score.sh <resultDir> --lib_path <libRoot> --summary_file <summary>
//
// Classify issues one of these per directory matching the feature glob; the
// tool appends to the shared summary file, which is why the fan-out is
// strictly sequential.
func (r *Runner) scoreCommand(resultDir string) Command {
	return Command{
		Path: r.layout.Tool(paths.ScoreTool),
		Args: []string{resultDir, "--lib_path", r.layout.LibRoot, "--summary_file", r.layout.SummaryFile},
	}
}

package config

// Resolve merges the three configuration layers into the effective model.
// Precedence, lowest to highest: defaults, file store, CLI overrides. Each
// keyed field takes the highest layer that actually supplies it.
func Resolve(defaults Values, store *Store, ov Overrides) Model {
	merged := make(Values, len(fileKeys))
	for _, key := range fileKeys {
		if v, ok := defaults[key]; ok {
			merged[key] = v
		}
		if v, ok := store.Read(key); ok {
			merged[key] = v
		}
		if v, ok := ov.Values[key]; ok {
			merged[key] = v
		}
	}

	return Model{
		ProjectPath: merged[KeyProjectPath],
		DataPath:    merged[KeyDataPath],
		LibPath:     merged[KeyLibPath],
		Cells:       merged[KeyCells],
		Bins:        merged[KeyBins],
		Dataset:     merged[KeyDataset],
		Keyword:     merged[KeyKeyword],
		Fraction:    merged[KeyFraction],
		LabelFile:   ov.LabelFile,
		DryRun:      ov.DryRun,
		DoPartition: ov.DoPartition,
		DoExtract:   ov.DoExtract,
		DoClassify:  ov.DoClassify,
	}
}

package dsl

import (
	"github.com/arthur-debert/keepspec/pkg/jars"
)

// The query surface reports the files a run reads and writes, for build
// tools that track them. It works before and after Freeze.

// InJarFiles is a live view of the input paths
func (t *Task) InJarFiles() jars.PathView { return t.cfg.Jars.In.Paths() }

// InJarFilters is a live view of the input filters, aligned with InJarFiles
func (t *Task) InJarFilters() jars.FilterView { return t.cfg.Jars.In.Filters() }

// OutJarFiles is a live view of the output paths
func (t *Task) OutJarFiles() jars.PathView { return t.cfg.Jars.Out.Paths() }

// OutJarFilters is a live view of the output filters, aligned with OutJarFiles
func (t *Task) OutJarFilters() jars.FilterView { return t.cfg.Jars.Out.Filters() }

// LibraryJarFiles is a live view of the library paths
func (t *Task) LibraryJarFiles() jars.PathView { return t.cfg.Jars.Library.Paths() }

// LibraryJarFilters is a live view of the library filters, aligned with LibraryJarFiles
func (t *Task) LibraryJarFilters() jars.FilterView { return t.cfg.Jars.Library.Filters() }

// PrintSeedsFile returns the seeds file; standard output and unset report false
func (t *Task) PrintSeedsFile() (string, bool) { return t.cfg.PrintSeeds.File() }

// PrintUsageFile returns the usage file; standard output and unset report false
func (t *Task) PrintUsageFile() (string, bool) { return t.cfg.PrintUsage.File() }

// PrintMappingFile returns the mapping file; standard output and unset report false
func (t *Task) PrintMappingFile() (string, bool) { return t.cfg.PrintMapping.File() }

// PrintConfigurationFile returns the configuration file; standard output and unset report false
func (t *Task) PrintConfigurationFile() (string, bool) { return t.cfg.PrintConfiguration.File() }

// DumpFile returns the dump file; standard output and unset report false
func (t *Task) DumpFile() (string, bool) { return t.cfg.Dump.File() }

// OutputFiles lists every file the run writes: output jars first, then
// the print targets that name a file.
func (t *Task) OutputFiles() []string {
	files := t.cfg.Jars.Out.Paths().Strings()
	for _, get := range []func() (string, bool){
		t.PrintSeedsFile,
		t.PrintUsageFile,
		t.PrintMappingFile,
		t.PrintConfigurationFile,
		t.DumpFile,
	} {
		if path, ok := get(); ok {
			files = append(files, path)
		}
	}
	return files
}

// InputFiles lists every file the run reads: input and library jars, then
// the mapping, dictionaries and included configurations that are set.
func (t *Task) InputFiles() []string {
	files := t.cfg.Jars.In.Paths().Strings()
	files = append(files, t.cfg.Jars.Library.Paths().Strings()...)
	for _, path := range []string{
		t.cfg.ApplyMapping,
		t.cfg.ObfuscationDictionary,
		t.cfg.ClassObfuscationDictionary,
		t.cfg.PackageObfuscationDictionary,
	} {
		if path != "" {
			files = append(files, path)
		}
	}
	return append(files, t.cfg.IncludedConfigurations...)
}

package dsl

import (
	"math"

	"github.com/arthur-debert/keepspec/pkg/configuration"
	"github.com/arthur-debert/keepspec/pkg/descriptor"
	"github.com/arthur-debert/keepspec/pkg/errors"
)

// Target sets the class file version of the output. Unknown versions are
// logged and resolve to version 0.
func (t *Task) Target(version string) error {
	if err := t.begin("target"); err != nil {
		return err
	}
	v, ok := configuration.ParseClassVersion(version)
	if !ok {
		t.logger.Warn().Str("version", version).Msg("unknown target version, class version left at 0")
	}
	t.cfg.TargetClassVersion = v
	return nil
}

// OptimizationPasses sets the number of optimization passes
func (t *Task) OptimizationPasses(n int) error {
	if err := t.begin("optimizationpasses"); err != nil {
		return err
	}
	if n < 1 {
		return errors.Newf(errors.ErrParse, "optimizationpasses: expected a positive number, got %d", n).
			WithDetail("verb", "optimizationpasses")
	}
	t.cfg.OptimizationPasses = n
	return nil
}

// ForceProcessing makes the engine reprocess regardless of timestamps
func (t *Task) ForceProcessing() error {
	if err := t.begin("forceprocessing"); err != nil {
		return err
	}
	t.cfg.LastModified = math.MaxInt64
	return nil
}

// RepackageClasses moves obfuscated classes into pkg ("" is the root package)
func (t *Task) RepackageClasses(pkg string) error {
	if err := t.begin("repackageclasses"); err != nil {
		return err
	}
	internal := descriptor.InternalClassName(pkg)
	t.cfg.RepackageClasses = &internal
	return nil
}

// FlattenPackageHierarchy moves obfuscated packages under pkg
func (t *Task) FlattenPackageHierarchy(pkg string) error {
	if err := t.begin("flattenpackagehierarchy"); err != nil {
		return err
	}
	internal := descriptor.InternalClassName(pkg)
	t.cfg.FlattenPackageHierarchy = &internal
	return nil
}

// RenameSourceFileAttribute replaces source file attributes with name
func (t *Task) RenameSourceFileAttribute(name string) error {
	if err := t.begin("renamesourcefileattribute"); err != nil {
		return err
	}
	t.cfg.NewSourceFileAttribute = &name
	return nil
}

// KeyStore appends a signing key store
func (t *Task) KeyStore(path string) error {
	return t.appendString("keystore", &t.cfg.KeyStores, path)
}

// KeyStorePassword appends a key store password
func (t *Task) KeyStorePassword(password string) error {
	return t.appendString("keystorepassword", &t.cfg.KeyStorePasswords, password)
}

// KeyAlias appends a key alias
func (t *Task) KeyAlias(alias string) error {
	return t.appendString("keyalias", &t.cfg.KeyAliases, alias)
}

// KeyPassword appends a key password
func (t *Task) KeyPassword(password string) error {
	return t.appendString("keypassword", &t.cfg.KeyPasswords, password)
}

// IncludeConfiguration records an included configuration file
func (t *Task) IncludeConfiguration(path string) error {
	return t.appendString("include", &t.cfg.IncludedConfigurations, path)
}

func (t *Task) appendString(verb string, list *[]string, value string) error {
	if err := t.begin(verb); err != nil {
		return err
	}
	*list = append(*list, value)
	return nil
}

// ApplyMapping reuses a previous obfuscation mapping
func (t *Task) ApplyMapping(path string) error {
	return t.setString("applymapping", &t.cfg.ApplyMapping, path)
}

// ObfuscationDictionary sets the member name dictionary
func (t *Task) ObfuscationDictionary(path string) error {
	return t.setString("obfuscationdictionary", &t.cfg.ObfuscationDictionary, path)
}

// ClassObfuscationDictionary sets the class name dictionary
func (t *Task) ClassObfuscationDictionary(path string) error {
	return t.setString("classobfuscationdictionary", &t.cfg.ClassObfuscationDictionary, path)
}

// PackageObfuscationDictionary sets the package name dictionary
func (t *Task) PackageObfuscationDictionary(path string) error {
	return t.setString("packageobfuscationdictionary", &t.cfg.PackageObfuscationDictionary, path)
}

func (t *Task) setString(verb string, field *string, value string) error {
	if err := t.begin(verb); err != nil {
		return err
	}
	*field = value
	return nil
}

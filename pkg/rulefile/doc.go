// Package rulefile loads rule documents written in TOML or YAML and
// replays them onto a dsl.Task, one verb call per entry.
//
// A document mirrors the verb surface:
//
//	include = ["common.toml"]
//	flags = ["dontobfuscate", "verbose"]
//	target = "1.8"
//	keepattributes = ["Signature", "*Annotation*"]
//
//	[[injars]]
//	path = "build/app.jar"
//	filter = "!META-INF/**"
//
//	[print]
//	seeds = "-"
//	mapping = "build/mapping.txt"
//
//	[[keep]]
//	name = "com.example.Main"
//	[[keep.method]]
//	access = "public static"
//	type = "void"
//	name = "main"
//	parameters = "java.lang.String[]"
//
// Unknown keys are rejected. Relative paths resolve against the directory
// of the file that names them.
package rulefile

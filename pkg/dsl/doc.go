// Package dsl is the verb surface build scripts use to describe a
// processing run. A Task owns one Configuration; each method is one DSL
// verb and mutates exactly the fields that verb names.
//
// Keep-family verbs take a qualifier record and an optional block. While
// the block runs, the keep specification is "open" and the member verbs
// (Field, Method, Constructor) attach to it:
//
//	task.Keep(classspec.KeepArgs{ClassArgs: classspec.ClassArgs{Name: "com.example.Main"}},
//		func(c *dsl.ClassScope) error {
//			return c.Method(classspec.MemberArgs{
//				Access: "public static", Type: "void", Name: "main", Parameters: "java.lang.String[]",
//			})
//		})
//
// Evaluation is single-threaded. After Freeze the Configuration belongs to
// the engine and every verb fails.
package dsl

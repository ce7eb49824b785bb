// Package configuration holds the root aggregate produced by DSL
// evaluation and handed to the processing engine.
//
// A Configuration is mutated only while rules are being evaluated; once
// handed off it must be treated as read-only. No field is ever reset
// implicitly.
package configuration

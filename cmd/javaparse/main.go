// javaparse parses Java source text into a compact arena-backed AST.
//
// Usage:
//
//	# Parse one or more files, reporting success/failure per file
//	javaparse parse Greeter.java Point.java
//
//	# Parse a directory of files concurrently
//	javaparse parse --dir src/main/java --concurrency 8
//
//	# Watch directories, reparsing files as they change
//	javaparse watch --config javaparse.yaml
//
//	# Serve Prometheus metrics and health endpoints
//	javaparse serve-metrics --config javaparse.yaml
//
//	# Show version information
//	javaparse version
//
// For complete documentation, see: https://github.com/javalang/javaparse
package main

func main() {
	Execute()
}

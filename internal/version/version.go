package version

const (
	// CLIName is the binary and MCP server name.
	CLIName = "dexpaprika"
	Version = "0.1.0"
)

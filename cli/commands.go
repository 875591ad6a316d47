package cli

// Globals holds flags shared by every subcommand.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for this operation."`
	NoColor   bool `help:"Disable colored diagnostic output."`
}

// Commands is the top-level kong command set for ledgerfmt, mirroring
// the teacher's Commands struct in cli/commands.go (Check/Format/Web),
// generalized to this grammar's own concerns (no ledger-balancing
// Doctor command, since cross-reference validation is out of scope;
// a Watch command replaces Web, since there is no editor-facing HTTP
// API here, only the file-watch reparse loop of spec.md §6).
type Commands struct {
	Globals

	Parse  ParseCmd  `cmd:"" help:"Parse a journal file and dump its tree."`
	Check  CheckCmd  `cmd:"" help:"Parse a journal file and report diagnostics."`
	Format FormatCmd `cmd:"" help:"Re-align posting amounts into columns."`
	Watch  WatchCmd  `cmd:"" help:"Watch a file and re-check it on every change."`
}

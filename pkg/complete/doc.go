// Package complete implements dynamic shell completion for web.
//
// The shell calls back into the binary on every completion request. The
// callback is signalled through the environment, so it is detected before any
// argument parsing or config loading happens:
//
//	COMPLETE=zsh web                       # print the zsh registration script
//	COMPLETE=zsh web -- web remove gh,cl   # answer a completion query
//
// Without a "--" separator the invocation registers: it prints a script that
// defines a callback function and binds it to the program name. With the
// separator it answers: the words after "--" are the current command line
// (program name included) and the word index of the cursor is read from
// _WEB_COMPLETE_INDEX. The answer is printed one candidate per line.
//
// Completion invocations never fail visibly. Every error, including a broken
// config file or a panic, results in empty output and exit code 0, and
// nothing is ever written to stderr.
//
// The pieces, leaf first:
//
//   - AliasSource: where alias names come from (pkg/aliases.FileSource)
//   - Resolver: prefix matching over the alias source
//   - ParseMode and Grammar: what is being asked and which slot is completed
//   - Emit: the per-shell registration scripts
//   - Dispatch: the process entry point tying it together
package complete

package complete

// Registration scripts, one per dialect. Every script defines the callback,
// runs the binary with COMPLETE set and a "--" followed by the command line,
// and binds the callback to the program name. Program and binary path are
// already quoted for the target shell when the templates are executed.

const bashScript = `# bash completion for {{.Program}}
{{.Callback}}() {
    local candidate
    COMPREPLY=()
    while IFS= read -r candidate; do
        [[ -n "$candidate" ]] && COMPREPLY+=("$candidate")
    done < <({{.IndexVar}}="$COMP_CWORD" {{.CompleteVar}}={{.Dialect}} {{.Bin}} {{.Separator}} "${COMP_WORDS[@]}" 2>/dev/null)
    return 0
}
complete -o nosort -F {{.Callback}} {{.Program}} 2>/dev/null || complete -F {{.Callback}} {{.Program}}
`

const zshScript = `# zsh completion for {{.Program}}
{{.Callback}}() {
    local -a candidates
    candidates=(${(f)"$({{.IndexVar}}=$((CURRENT - 1)) {{.CompleteVar}}={{.Dialect}} {{.Bin}} {{.Separator}} "${words[@]}" 2>/dev/null)"})
    (( ${#candidates} )) || return 1
    _describe -V 'values' candidates
}
compdef {{.Callback}} {{.Program}}
`

// fish drops an empty current token from command substitution, so the index
// is the count of the completed tokens: it points past them when the current
// token is empty.
const fishScript = `# fish completion for {{.Program}}
function {{.Callback}}
    set -l tokens (commandline -opc)
    set -l current (commandline -ct)
    env {{.IndexVar}}=(count $tokens) {{.CompleteVar}}={{.Dialect}} {{.Bin}} {{.Separator}} $tokens $current 2>/dev/null
end
complete -c {{.Program}} -f -k -a '({{.Callback}})'
`

const elvishScript = `# elvish completion for {{.Program}}
use os
fn {{.Callback}} {|@words|
    tmp E:{{.CompleteVar}} = {{.Dialect}}
    tmp E:{{.IndexVar}} = (to-string (- (count $words) 1))
    (external {{.Bin}}) {{.Separator}} $@words 2>$os:dev-null | from-lines
}
set edit:completion:arg-completer[{{.Program}}] = ${{.Callback}}~
`

// PowerShell passes the whole line, cut at the cursor. A cursor past the
// text means a new word was started, which the trailing space conveys.
const powershellScript = `# powershell completion for {{.Program}}
function {{.Callback}} {
    param($wordToComplete, $commandAst, $cursorPosition)
    $line = $commandAst.Extent.Text
    $cursor = $cursorPosition - $commandAst.Extent.StartOffset
    if ($cursor -lt $line.Length) {
        $line = $line.Substring(0, $cursor)
    } elseif ($cursor -gt $line.Length) {
        $line = $line + ' '
    }
    $env:{{.CompleteVar}} = '{{.Dialect}}'
    try {
        $candidates = & {{.Bin}} '{{.Separator}}' $line 2>$null
    } finally {
        Remove-Item Env:\{{.CompleteVar}} -ErrorAction SilentlyContinue
    }
    $candidates | Where-Object { $_ } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
    }
}
Register-ArgumentCompleter -Native -CommandName {{.Program}} -ScriptBlock ${function:{{.Callback}}}
`

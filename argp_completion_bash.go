package argp

import "text/template"

var bashCompletion = template.Must(template.New("bash").Parse(`# bash completion for {{.Program}}
#
# Source this file, or copy it into the bash-completion directory.

{{.Func}}()
{
    local cur=${COMP_WORDS[COMP_CWORD]}
    local -a lines
    mapfile -t lines < <({{.Program}} {{.Command}} "${COMP_WORDS[@]:1:COMP_CWORD}" 2>/dev/null)

    # Candidates first, then ":<directive>" on the last line.
    (( ${#lines[@]} > 0 )) || return
    local last=${lines[-1]}
    [[ $last == :* ]] || return
    local directive=${last#:}
    unset 'lines[-1]'

    if (( directive & {{.Error}} )); then
        return
    fi

    COMPREPLY=()
    local candidate
    for candidate in "${lines[@]}"; do
        if [[ $candidate == "$cur"* ]]; then
            COMPREPLY+=("$candidate")
        fi
    done

    if (( ! (directive & {{.NoFileComp}}) )); then
        local file
        while IFS= read -r file; do
            COMPREPLY+=("$file")
        done < <(compgen -f -- "$cur")
    fi

    if (( directive & {{.NoSpace}} )); then
        compopt -o nospace
    fi
    return 0
}

complete -F {{.Func}} {{.Program}}
`))

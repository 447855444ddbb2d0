package argp

import "text/template"

var zshCompletion = template.Must(template.New("zsh").Parse(`#compdef {{.Program}}

{{.Func}}() {
    local -a lines candidates opts
    lines=("${(@f)$({{.Program}} {{.Command}} "${(@)words[2,CURRENT]}" 2>/dev/null)}")

    # Candidates first, then ":<directive>" on the last line.
    [[ ${lines[-1]} == :* ]] || return 1
    local directive=${lines[-1]#:}
    candidates=("${(@)lines[1,-2]}")

    if (( directive & {{.Error}} )); then
        return 1
    fi
    if (( directive & {{.NoSpace}} )); then
        opts=(-S '')
    fi

    if (( ${#candidates} )); then
        compadd "${opts[@]}" -a candidates
    fi
    if (( ! (directive & {{.NoFileComp}}) )); then
        _files
    fi
}

compdef {{.Func}} {{.Program}}
`))

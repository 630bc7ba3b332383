package commands

const (
	_etc = "/usr/local/etc/com.github.sheetlens"
	_var = "/usr/local/var/com.github.sheetlens"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)

package commands

const (
	_etc = "/usr/local/etc/sheetlens"
	_var = "/usr/local/var/sheetlens"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)

package expressions

import "regexp"

// NamePattern допустимый формат имени выражения.
const NamePattern = `[a-zA-Z0-9\-_]+`

var nameRegexp = regexp.MustCompile(`^` + NamePattern + `$`)

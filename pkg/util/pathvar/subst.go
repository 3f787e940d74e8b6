/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package pathvar

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// Subst replaces instances of '${VARNAME}' (eg ${HOME}) with the variable.
// A leading '~/' is expanded to the user's home directory.
// Unknown variables are left untouched.
func Subst(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, ok := lookupVar("HOME"); ok {
			path = filepath.Join(home, path[2:])
		}
	}

	return substVars(path)
}

func substVars(path string) string {
	const (
		sepPrefix = "${"
		sepSuffix = "}"
	)

	splits := strings.Split(path, sepPrefix)

	var buffer bytes.Buffer

	// first split precedes the first sepPrefix so should always be written
	buffer.WriteString(splits[0]) // nolint: gas

	for _, s := range splits[1:] {
		subst, rest := substVar(s, sepPrefix, sepSuffix)
		buffer.WriteString(subst) // nolint: gas
		buffer.WriteString(rest)  // nolint: gas
	}

	return buffer.String()
}

// substVar searches for an instance of a variables name and replaces them with their value.
// The first return value is substituted portion of the string or noMatch if no replacement occurred.
// The second return value is the unconsumed portion of s.
func substVar(s string, noMatch string, sep string) (string, string) {
	endPos := strings.Index(s, sep)
	if endPos == -1 {
		return noMatch, s
	}

	v, ok := lookupVar(s[:endPos])
	if !ok {
		return noMatch, s
	}

	return v, s[endPos+1:]
}

// lookupVar returns the value of the variable.
// HOME and CWD are resolved by the process, anything else from the environment.
// Returns false if the variable doesn't exist.
func lookupVar(v string) (string, bool) {
	switch v {
	case "HOME":
		if home, err := os.UserHomeDir(); err == nil {
			return home, true
		}
	case "CWD":
		if wd, err := os.Getwd(); err == nil {
			return wd, true
		}
	}
	return os.LookupEnv(v)
}

package common

import "fmt"

// FileHeader returns the generated-code banner for a line comment prefix.
func FileHeader(commentPrefix string) (string, error) {
	version, err := GetVersion()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s Code generated by fibergen v%s. DO NOT EDIT.\n", commentPrefix, version), nil
}

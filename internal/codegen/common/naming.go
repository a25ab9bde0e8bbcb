package common

import "strings"

// ClassName is the generated wrapper class name for a target, e.g. "FiberBox".
func ClassName(prefix, target string) string { return prefix + target }

// PropsName is the generated props shape name, e.g. "FiberBoxProps".
func PropsName(prefix, target string) string { return prefix + target + "Props" }

// HandlerName is the generated props handler name, e.g. "FiberBoxPropsHandler".
func HandlerName(prefix, target string) string { return prefix + target + "PropsHandler" }

// ProductName derives the product type of a factory method.
// Names starting with one of keep are returned unchanged ("ExtrudePolygon");
// names starting with one of strip lose that prefix ("CreateBox" -> "Box").
// ok is false when the method is not a factory or nothing would remain.
func ProductName(method string, strip, keep []string) (name string, ok bool) {
	for _, p := range strip {
		if p != "" && strings.HasPrefix(method, p) && len(method) > len(p) {
			return method[len(p):], true
		}
	}
	for _, p := range keep {
		if p != "" && strings.HasPrefix(method, p) {
			return method, true
		}
	}
	return "", false
}

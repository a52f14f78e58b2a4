package flatten

import (
	"strconv"
	"strings"
)

// RootPath is the path of the root node.
const RootPath = "/"

// ChildPath returns the path of the index-th child of parent.
func ChildPath(parent string, index int) string {
	return parent + strconv.Itoa(index) + "/"
}

// ParentPath returns the path of the parent of path, or "" for the root.
func ParentPath(path string) string {
	if path == RootPath || !strings.HasSuffix(path, "/") {
		return ""
	}
	trimmed := strings.TrimSuffix(path, "/")
	return trimmed[:strings.LastIndex(trimmed, "/")+1]
}

// Depth returns the number of steps from the root to path.
func Depth(path string) int {
	return strings.Count(path, "/") - 1
}

// Command lumenray renders one or more task descriptors named on the
// command line (spec §6): each argument names a JSON file under task/
// without its .json extension, and the rendered image is written to
// output/<name>.png.
package main

import (
	"fmt"
	"os"

	"lumenray/task"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: lumenray <task-name> [task-name...]")
		os.Exit(1)
	}

	failed := false
	for _, name := range os.Args[1:] {
		if err := renderOne(name); err != nil {
			fmt.Fprintf(os.Stderr, "lumenray: %s: %v\n", name, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func renderOne(name string) error {
	t, err := task.Load(name)
	if err != nil {
		return err
	}
	fmt.Printf("rendering %s\n", name)
	return t.Run()
}

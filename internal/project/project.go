// Package project creates and describes Velvet project directories.
package project

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const maxNameLength = 40

// ValidateName enforces the naming rules for new projects: 1 to 40
// characters from [A-Za-z0-9_-], not starting with a digit.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("project name cannot exceed %d characters", maxNameLength)
	}
	if name[0] >= '0' && name[0] <= '9' {
		return fmt.Errorf("project name cannot start with a digit")
	}
	for _, ch := range name {
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9':
		case ch == '_' || ch == '-':
		default:
			return fmt.Errorf("project name contains invalid character %q", ch)
		}
	}
	return nil
}

// Create scaffolds a project directory under dir: a src/ folder with a
// sample program in each dialect, plus the config.vexl manifest.
func Create(dir, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	root := filepath.Join(dir, name)
	if _, err := os.Stat(root); err == nil {
		return fmt.Errorf("directory '%s' already exists", name)
	}

	srcDir := filepath.Join(root, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return fmt.Errorf("create project directories: %w", err)
	}

	files := map[string]string{
		filepath.Join(srcDir, "main.vex"): sampleVex(name),
		filepath.Join(srcDir, "main.vel"): sampleVel(name),
		filepath.Join(root, "config.vexl"): DefaultManifest(name),
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

// InitInteractive prompts for a project name on in and scaffolds it in
// the current directory, retrying until the name validates or input
// runs out.
func InitInteractive(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "Project name: ")
		line, err := reader.ReadString('\n')
		name := strings.TrimSpace(line)
		if name != "" {
			if verr := ValidateName(name); verr != nil {
				fmt.Fprintf(out, "Invalid name: %v\n", verr)
				if err != nil {
					return verr
				}
				continue
			}
			if cerr := Create(".", name); cerr != nil {
				return cerr
			}
			fmt.Fprintf(out, "Created project '%s'\n", name)
			return nil
		}
		if err != nil {
			return fmt.Errorf("no project name given")
		}
	}
}

func sampleVex(name string) string {
	return fmt.Sprintf(`// Source entry for %s
fn main() {
    println("Hello from main.vex!")
}
main()
`, name)
}

func sampleVel(name string) string {
	return fmt.Sprintf(`// Logic layer for %s
bind message as string = "Hello from main.vel"
println(message)
`, name)
}

package application

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// InitMode selects the scaffolding layout written by `init`.
type InitMode string

const (
	// ModeClaudeCode installs the templates as a Claude Code skill.
	ModeClaudeCode InitMode = "claude-code"
	// ModeScript installs standalone scripts plus a prompt file.
	ModeScript InitMode = "script"
)

// ParseInitMode validates a mode string from the CLI.
func ParseInitMode(raw string) (InitMode, error) {
	switch InitMode(raw) {
	case ModeClaudeCode, ModeScript:
		return InitMode(raw), nil
	default:
		return "", fmt.Errorf("unknown mode %q (expected %q or %q)", raw, ModeClaudeCode, ModeScript)
	}
}

// Prompter defines the interactive decisions the init flow may need when
// they were not supplied as flags.
type Prompter interface {
	// ProjectName asks for the target folder name.
	ProjectName() (string, error)
	// SelectMode asks which scaffolding layout to install.
	SelectMode() (InitMode, error)
	// ConfirmOverwrite asks whether the listed existing files may be
	// overwritten.
	ConfirmOverwrite(existing []string) (bool, error)
}

// InitRequest carries the init command's inputs. An empty Mode triggers an
// interactive selection; an empty ProjectName without Here triggers a name
// prompt.
type InitRequest struct {
	ProjectName string
	Here        bool
	Mode        InitMode
	Force       bool
}

// InitResult lists what init created.
type InitResult struct {
	TargetDir string
	Mode      InitMode
	Created   []string
}

// ErrInitAborted is returned when the operator declines to overwrite
// existing files.
var ErrInitAborted = fmt.Errorf("aborted")

const (
	skillTemplate       = "SKILL.md"
	waitScriptTemplate  = "scripts/review-wait.sh"
	fetchScriptTemplate = "scripts/review-comments.sh"
)

// InitService copies the embedded scaffolding templates into a target
// project.
type InitService struct {
	templates fs.FS
	prompter  Prompter
	cwd       func() (string, error)
}

// NewInitService creates an InitService reading templates from the given
// filesystem and resolving interactive decisions through prompter.
func NewInitService(templates fs.FS, prompter Prompter) *InitService {
	return &InitService{
		templates: templates,
		prompter:  prompter,
		cwd:       os.Getwd,
	}
}

// NewInitServiceAt is NewInitService with a fixed working directory,
// for tests.
func NewInitServiceAt(templates fs.FS, prompter Prompter, dir string) *InitService {
	s := NewInitService(templates, prompter)
	s.cwd = func() (string, error) { return dir, nil }
	return s
}

// Run performs the init flow: resolve the target directory, pick a mode,
// check for existing files, then copy templates.
func (s *InitService) Run(req InitRequest) (*InitResult, error) {
	if req.ProjectName != "" && req.Here {
		return nil, fmt.Errorf("cannot specify both a project name and --here")
	}

	targetDir, err := s.resolveTargetDir(req)
	if err != nil {
		return nil, err
	}

	mode := req.Mode
	if mode == "" {
		mode, err = s.prompter.SelectMode()
		if err != nil {
			return nil, err
		}
	}

	ok, err := s.checkExisting(targetDir, mode, req.Force)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInitAborted
	}

	var created []string
	switch mode {
	case ModeClaudeCode:
		created, err = s.installClaudeCode(targetDir)
	case ModeScript:
		created, err = s.installScript(targetDir)
	default:
		err = fmt.Errorf("unknown mode %q", mode)
	}
	if err != nil {
		return nil, err
	}

	return &InitResult{TargetDir: targetDir, Mode: mode, Created: created}, nil
}

// TargetFiles returns the paths, relative to the target directory, that the
// given mode will create.
func TargetFiles(mode InitMode) []string {
	if mode == ModeClaudeCode {
		return []string{
			".claude/skills/reviewloop/SKILL.md",
			".claude/skills/reviewloop/scripts/review-wait.sh",
			".claude/skills/reviewloop/scripts/review-comments.sh",
		}
	}
	return []string{
		"scripts/reviewloop/review-wait.sh",
		"scripts/reviewloop/review-comments.sh",
		"scripts/reviewloop/reviewPrompt.txt",
	}
}

func (s *InitService) resolveTargetDir(req InitRequest) (string, error) {
	cwd, err := s.cwd()
	if err != nil {
		return "", err
	}
	if req.Here {
		return cwd, nil
	}

	name := req.ProjectName
	if name == "" {
		name, err = s.prompter.ProjectName()
		if err != nil {
			return "", err
		}
	}
	if name == "." {
		return cwd, nil
	}

	target := filepath.Join(cwd, name)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("creating target directory: %w", err)
	}
	return target, nil
}

// checkExisting reports whether installation may proceed, prompting for
// confirmation when target files already exist and --force was not given.
func (s *InitService) checkExisting(targetDir string, mode InitMode, force bool) (bool, error) {
	var existing []string
	for _, rel := range TargetFiles(mode) {
		if _, err := os.Stat(filepath.Join(targetDir, filepath.FromSlash(rel))); err == nil {
			existing = append(existing, rel)
		}
	}
	if len(existing) == 0 || force {
		return true, nil
	}
	return s.prompter.ConfirmOverwrite(existing)
}

// installClaudeCode lays out the skill directory with SKILL.md and the two
// scripts.
func (s *InitService) installClaudeCode(targetDir string) ([]string, error) {
	skillDir := filepath.Join(targetDir, ".claude", "skills", "reviewloop")
	scriptsDir := filepath.Join(skillDir, "scripts")

	skillPath := filepath.Join(skillDir, "SKILL.md")
	if err := s.copyTemplate(skillTemplate, skillPath, false); err != nil {
		return nil, err
	}

	created := []string{skillPath}
	scripts, err := s.copyScripts(scriptsDir)
	if err != nil {
		return nil, err
	}
	return append(created, scripts...), nil
}

// installScript lays out standalone scripts plus reviewPrompt.txt, the
// skill content with its frontmatter stripped.
func (s *InitService) installScript(targetDir string) ([]string, error) {
	scriptsDir := filepath.Join(targetDir, "scripts", "reviewloop")

	created, err := s.copyScripts(scriptsDir)
	if err != nil {
		return nil, err
	}

	skill, err := fs.ReadFile(s.templates, skillTemplate)
	if err != nil {
		return nil, fmt.Errorf("reading skill template: %w", err)
	}

	promptPath := filepath.Join(scriptsDir, "reviewPrompt.txt")
	prompt := StripFrontmatter(string(skill))
	if err := os.WriteFile(promptPath, []byte(prompt), 0o644); err != nil {
		return nil, fmt.Errorf("writing prompt file: %w", err)
	}

	return append(created, promptPath), nil
}

// copyScripts installs the two shell scripts into scriptsDir, marking them
// executable.
func (s *InitService) copyScripts(scriptsDir string) ([]string, error) {
	var created []string
	for _, tmpl := range []string{waitScriptTemplate, fetchScriptTemplate} {
		dst := filepath.Join(scriptsDir, filepath.Base(tmpl))
		if err := s.copyTemplate(tmpl, dst, true); err != nil {
			return nil, err
		}
		created = append(created, dst)
	}
	return created, nil
}

func (s *InitService) copyTemplate(name, dst string, executable bool) error {
	data, err := fs.ReadFile(s.templates, name)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", name, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}

	if executable && runtime.GOOS != "windows" {
		info, err := os.Stat(dst)
		if err != nil {
			return err
		}
		if err := os.Chmod(dst, info.Mode()|0o111); err != nil {
			return fmt.Errorf("marking %s executable: %w", dst, err)
		}
	}

	return nil
}

// StripFrontmatter removes a leading YAML frontmatter block delimited by
// `---` lines. Content without frontmatter, or with an unclosed block, is
// returned untouched.
func StripFrontmatter(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return content
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return strings.TrimLeft(strings.Join(lines[i+1:], "\n"), "\n")
		}
	}
	return content
}

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"personal-diary/internal/apperr"
	"personal-diary/internal/diary"
	"personal-diary/internal/logger"
	"personal-diary/internal/models"
	"personal-diary/internal/services"
)

type App struct {
	journal *services.Journal
	auth    *services.AuthGate
	reader  *bufio.Reader
	inFd    int
	out     io.Writer
	logger  logger.Logger
}

func NewApp(journal *services.Journal, auth *services.AuthGate, in io.Reader, out io.Writer, log logger.Logger) *App {
	if log == nil {
		log = logger.NoOp{}
	}
	return &App{
		journal: journal,
		auth:    auth,
		reader:  bufio.NewReader(in),
		inFd:    fdOf(in),
		out:     out,
		logger:  log,
	}
}

// fdOf returns the descriptor behind in, or -1 when in is not a file.
func fdOf(in io.Reader) int {
	if f, ok := in.(*os.File); ok {
		return int(f.Fd())
	}
	return -1
}

// Run asks for the password once and then serves commands until exit or EOF.
func (a *App) Run() error {
	password, err := GetPassword(a.reader, a.inFd, a.out)
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}
	if err := a.auth.Verify(password); err != nil {
		a.println(apperr.UserMessage(err))
		return err
	}

	a.println("🌸 Personal Diary 🌸  (type 'help' for commands)")
	runREPL(a, a.reader, a.out)
	return nil
}

// Add prompts for date, mood and body and appends the entry.
func (a *App) Add() error {
	date, err := GetSimpleText(a.reader, "Date (YYYY-MM-DD, empty for today):", a.out)
	if err != nil {
		return err
	}
	mood, err := GetSimpleText(a.reader, moodPrompt(), a.out)
	if err != nil {
		return err
	}
	mood = resolveMood(mood)
	body, err := GetMultiline(a.reader, "Dear diary...", a.out)
	if err != nil {
		return err
	}

	if _, err := a.journal.Save(date, mood, body); err != nil {
		return a.fail(err)
	}
	a.println("✨ Entry saved successfully! ✨")
	return nil
}

func (a *App) List() error {
	blocks, err := a.journal.Blocks()
	if err == nil && len(blocks) == 0 {
		err = apperr.ErrMissingFile
	}
	if err != nil {
		return a.fail(err)
	}
	a.printBlocks(blocks)
	return nil
}

func (a *App) Search(keyword string) error {
	res, err := a.journal.Search(keyword)
	if err != nil {
		return a.fail(err)
	}
	a.println(fmt.Sprintf("Search Results for '%s'", keyword))
	a.printBlocks(res.Blocks)
	return nil
}

func (a *App) Stats() error {
	stats, err := a.journal.Stats()
	if err != nil {
		return a.fail(err)
	}
	a.println(stats.String())
	return nil
}

// Edit replaces entry n (1-based, as printed by list).
func (a *App) Edit(arg string) error {
	index, err := parseEntryNumber(arg)
	if err != nil {
		return a.fail(err)
	}
	block, err := a.block(index)
	if err != nil {
		return a.fail(err)
	}

	a.println(strings.TrimSpace(block.Text))
	text, err := GetMultiline(a.reader, "New text for entry #"+arg+":", a.out)
	if err != nil {
		return err
	}
	if text == "" {
		a.println("Edit cancelled.")
		return nil
	}

	if err := a.journal.EditEntry(index, text); err != nil {
		return a.fail(err)
	}
	a.println("Entry updated.")
	return nil
}

// Delete removes entry n after confirmation.
func (a *App) Delete(arg string) error {
	index, err := parseEntryNumber(arg)
	if err != nil {
		return a.fail(err)
	}
	block, err := a.block(index)
	if err != nil {
		return a.fail(err)
	}

	if !Confirm(a.reader, "Delete "+block.Label()+"?", a.out) {
		a.println("Delete cancelled.")
		return nil
	}
	if err := a.journal.DeleteEntry(index); err != nil {
		return a.fail(err)
	}
	a.println("Entry deleted.")
	return nil
}

func (a *App) block(index int) (diary.Block, error) {
	blocks, err := a.journal.Blocks()
	if err != nil {
		return diary.Block{}, err
	}
	if index >= len(blocks) {
		return diary.Block{}, apperr.ErrBlockOutOfRange
	}
	return blocks[index], nil
}

func (a *App) printBlocks(blocks []diary.Block) {
	for _, b := range blocks {
		a.println(fmt.Sprintf("#%d %s", b.Index+1, strings.TrimSpace(b.Text)))
		a.println(diary.Separator)
	}
}

// fail prints the user message for err. Storage errors are also logged.
func (a *App) fail(err error) error {
	if apperr.KindOf(err) == apperr.KindStorage || apperr.KindOf(err) == "" {
		a.logger.Error("CLI", err, nil)
	}
	a.println(apperr.UserMessage(err))
	return err
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func moodPrompt() string {
	var sb strings.Builder
	sb.WriteString("Mood (number or label, empty for " + models.DefaultMood + "):")
	for i, m := range models.Moods {
		fmt.Fprintf(&sb, "\n  %d) %s", i+1, m)
	}
	return sb.String()
}

// resolveMood turns a menu number into its label. Anything else is passed
// through for the journal to validate.
func resolveMood(input string) string {
	if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(models.Moods) {
		return models.Moods[n-1]
	}
	return input
}

func parseEntryNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, apperr.ErrBlockOutOfRange.WithUserMessage("Give an entry number as shown by 'list'.")
	}
	return n - 1, nil
}

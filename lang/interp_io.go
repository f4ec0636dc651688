package lang

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// exportHeader opens every export file so re-imports are recognizable.
const exportHeader = "# Exported from Anubhav\n"

func (in *Interp) execIO(stmt Stmt) error {
	switch s := stmt.(type) {
	case *ReadFileStmt:
		content, err := in.files.ReadFile(s.Path)
		if err != nil {
			return ErrReadFile.Wrap(err).With(slog.String("path", s.Path))
		}

		in.intents[s.Result] = content
		in.printf("Read %d bytes from '%s'", len(content), s.Path)
	case *WriteFileStmt:
		content := s.Content
		if strings.HasPrefix(content, "${") && strings.HasSuffix(content, "}") {
			if text, ok := in.intents[content[2:len(content)-1]]; ok {
				content = text
			}
		}

		var err error

		verb := "Wrote"
		if s.Append {
			verb = "Appended"
			err = in.files.AppendFile(s.Path, content)
		} else {
			err = in.files.WriteFile(s.Path, content)
		}

		if err != nil {
			return ErrWriteFile.Wrap(err).With(slog.String("path", s.Path))
		}

		in.printf("%s %d bytes to '%s'", verb, len(content), s.Path)
	case *ExistsStmt:
		exists := in.files.Exists(s.Path)
		in.variables[s.Result] = b2f(exists)
		in.printf("File '%s' exists: %t", s.Path, exists)
	case *SleepStmt:
		value, err := in.eval(s.Millis)
		if err != nil {
			return err
		}

		ms := int64(value)
		in.printf("Sleeping for %d ms...", ms)
		in.clock.Sleep(time.Duration(ms) * time.Millisecond)
	case *InputStmt:
		line, err := in.console.ReadLine(s.Prompt)
		if err != nil {
			return ErrReadInput.Wrap(err)
		}

		trimmed := strings.TrimSpace(line)
		if num, err := strconv.ParseFloat(trimmed, 64); err == nil {
			in.variables[s.Result] = num
		} else {
			in.intents[s.Result] = trimmed
		}
	case *ExportStmt:
		return in.export(s)
	}

	return nil
}

// export writes the named items as statements that re-create them when
// the file is imported back.
func (in *Interp) export(s *ExportStmt) error {
	var content strings.Builder
	content.WriteString(exportHeader)

	for _, item := range s.Items {
		switch {
		case mapHas(in.intents, item):
			fmt.Fprintf(&content, "INTENT %s %q\n", item, in.intents[item])
		case mapHas(in.calculations, item):
			fmt.Fprintf(&content, "STORE %s %s\n", item, formatNum(in.calculations[item]))
		case mapHas(in.variables, item):
			fmt.Fprintf(&content, "STORE %s %s\n", item, formatNum(in.variables[item]))
		case mapHas(in.arrays, item):
			fmt.Fprintf(&content, "ARRAY %s\n", item)
			for _, value := range in.arrays[item] {
				fmt.Fprintf(&content, "PUSH %s %s\n", item, formatNum(value))
			}
		}
	}

	if err := in.files.WriteFile(s.Path, content.String()); err != nil {
		return ErrWriteFile.Wrap(err).With(slog.String("path", s.Path))
	}

	in.printf("Exported %d items to %s", len(s.Items), s.Path)

	return nil
}

// execImport parses and runs another script in the same interpreter.
// Namespaces are shared, so imported definitions persist. A script
// already being imported further up the chain is a cycle.
func (in *Interp) execImport(s *ImportStmt) (outcome, error) {
	if in.importing[s.Path] {
		return outcome{}, ErrImportCycle.Wrap(fmt.Errorf("'%s' is already being imported", s.Path))
	}

	content, err := in.files.ReadFile(s.Path)
	if err != nil {
		return outcome{}, ErrReadFile.Wrap(err).With(slog.String("path", s.Path))
	}

	stmts, err := NewParser(content).Parse()
	if err != nil {
		return outcome{}, WrapError(err).With(slog.String("path", s.Path))
	}

	in.importing[s.Path] = true
	out, err := in.exec(stmts)
	delete(in.importing, s.Path)

	if err != nil {
		return outcome{}, err
	}

	return out, nil
}

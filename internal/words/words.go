// Package words extracts the long words of a text file.
package words

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/alextanhongpin/errors/cause"
	"github.com/alextanhongpin/errors/codes"
	"github.com/alextanhongpin/lambda/types/stream"
)

// LongWords returns the distinct words longer than minLen runes, sorted.
// Words are separated by whitespace.
func LongWords(r io.Reader, minLen int) ([]string, error) {
	br := bufio.NewReader(r)

	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
	}

	s := stream.FlatMap(stream.From(lines), strings.Fields).
		Filter(func(w string) bool { return len([]rune(w)) > minLen })

	return stream.SortedNatural(stream.Distinct(s)).Collect(), nil
}

// ReadFile returns the long words of the file at path.
func ReadFile(path string, minLen int) ([]string, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, cause.New(codes.NotFound, "words/file_not_found", "The data file does not exist").Wrap(err)
	}
	if err != nil {
		return nil, cause.New(codes.Internal, "words/file_unreadable", "The data file cannot be read").Wrap(err)
	}
	defer f.Close()

	words, err := LongWords(f, minLen)
	if err != nil {
		return nil, cause.New(codes.Internal, "words/file_unreadable", "The data file cannot be read").Wrap(err)
	}

	return words, nil
}

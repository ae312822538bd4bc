package docs

import (
	"bufio"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// This test keeps the documentation in sync with itself:
//  1. every topic listed in readme.md loads,
//  2. every topic file is listed in readme.md,
//  3. every topic starts with a level-1 heading so the terminal
//     renderer has a title to work with.
func TestTopics(t *testing.T) {
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	if len(topicsInReadme) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("topic listed in readme.md does not load: %v", err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		t.Run("listed_"+topic, func(t *testing.T) {
			found := false
			for _, listed := range topicsInReadme {
				if listed == topic {
					found = true
				}
			}
			if !found {
				t.Errorf("topic file %s.md is not listed in readme.md", topic)
			}
		})
		t.Run("heading_"+topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			if !startsWithH1(t, content) {
				t.Errorf("topic %s does not start with a level-1 heading", topic)
			}
		})
	}
}

func startsWithH1(t *testing.T, content string) bool {
	t.Helper()
	source := []byte(content)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))
	first := root.FirstChild()
	if first == nil {
		return false
	}
	heading, ok := first.(*ast.Heading)
	return ok && heading.Level == 1
}

func TestGetTopicUnknown(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("unknown topic should fail")
	}
}

func TestGetTopicStar(t *testing.T) {
	content, err := GetTopic("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# Overview", "# Guests", "# Budget", "# Backup", "# Checklist"} {
		if !strings.Contains(content, want) {
			t.Errorf("expanded topics missing %q", want)
		}
	}
}

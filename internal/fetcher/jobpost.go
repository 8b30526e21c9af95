// Package fetcher imports job postings from the web so recruiters can seed a
// job description without pasting it by hand.
package fetcher

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

type JobPost struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// FetchJobPost downloads a posting page and extracts its title and body text.
// Selectors cover the common posting layouts; anything unmatched falls back
// to the page-level heading and paragraph sweep.
func FetchJobPost(pageURL, userAgent string) (JobPost, error) {
	req, err := http.NewRequest("GET", pageURL, nil)
	if err != nil {
		return JobPost{}, err
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return JobPost{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return JobPost{}, fmt.Errorf("fetch job post: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return JobPost{}, err
	}

	title := strings.TrimSpace(doc.Find("h1.job-title, h1.posting-headline, h1").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	body := doc.Find("div.job-description, section.description, div.posting-description, article").First()
	if body.Length() == 0 {
		body = doc.Find("body").First()
	}
	body.Find("script, style, nav, header, footer, form").Remove()

	var parts []string
	body.Find("p, h2, h3, li, pre").Each(func(i int, s *goquery.Selection) {
		if text := cleanText(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	description := strings.Join(parts, "\n\n")
	description = collapseBlankLines(description)
	if description == "" {
		return JobPost{}, fmt.Errorf("fetch job post: no description text found at %s", pageURL)
	}

	return JobPost{
		Title:       title,
		URL:         pageURL,
		Description: description,
	}, nil
}

// cleanText removes excessive whitespace and newlines
func cleanText(text string) string {
	re := regexp.MustCompile(`[ \t]+`)
	text = re.ReplaceAllString(text, " ")

	re = regexp.MustCompile(`\n+`)
	text = re.ReplaceAllString(text, "\n")

	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	return strings.Join(cleaned, "\n")
}

func collapseBlankLines(content string) string {
	re := regexp.MustCompile(`\n{3,}`)
	return strings.TrimSpace(re.ReplaceAllString(content, "\n\n"))
}

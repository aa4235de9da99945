package models

import (
	"bufio"
	"fmt"
	"sort"
	"strings"
	"time"
)

// FeeNoticeMarker is the sentinel line that tags announcement content as a
// pinned fee notice. The backend stores announcements as free text, so the
// structured notice travels inside the content.
const FeeNoticeMarker = "[[FEE_NOTICE]]"

// FeeNotice is a pinned announcement carrying a payment link and a payment window.
type FeeNotice struct {
	Title     string
	Link      string
	StartDate time.Time
	EndDate   time.Time
	Body      string
}

// ActiveOn reports whether day falls inside the payment window, inclusive.
func (n FeeNotice) ActiveOn(day time.Time) bool {
	d := NewDate(day).Time
	return !d.Before(n.StartDate) && !d.After(n.EndDate)
}

// Announcement is either a plain notice or, when Notice is set, a pinned fee notice.
type Announcement struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	Notice *FeeNotice `json:"-"`
}

// Pinned reports whether the announcement is a fee notice.
func (a Announcement) Pinned() bool { return a.Notice != nil }

// Text returns the human-readable body: the notice body for fee notices, the
// raw content otherwise.
func (a Announcement) Text() string {
	if a.Notice != nil {
		return a.Notice.Body
	}
	return a.Content
}

// Classify decodes the fee notice embedded in the content, if any.
func (a Announcement) Classify() Announcement {
	if n, ok := DecodeFeeNotice(a.Content); ok {
		if n.Title == "" {
			n.Title = a.Title
		}
		a.Notice = &n
	}
	return a
}

// ClassifyAll classifies every announcement and orders pinned notices first,
// keeping the backend order within each group.
func ClassifyAll(list []Announcement) []Announcement {
	out := make([]Announcement, len(list))
	for i, a := range list {
		out[i] = a.Classify()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pinned() && !out[j].Pinned()
	})
	return out
}

// EncodeFeeNotice renders a notice in the content format DecodeFeeNotice reads.
func EncodeFeeNotice(n FeeNotice) string {
	var b strings.Builder
	b.WriteString(FeeNoticeMarker + "\n")
	if n.Title != "" {
		fmt.Fprintf(&b, "title: %s\n", n.Title)
	}
	fmt.Fprintf(&b, "link: %s\n", n.Link)
	fmt.Fprintf(&b, "from: %s\n", n.StartDate.Format(DateLayout))
	fmt.Fprintf(&b, "to: %s\n", n.EndDate.Format(DateLayout))
	if body := strings.TrimSpace(n.Body); body != "" {
		b.WriteString("\n" + body)
	}
	return strings.TrimRight(b.String(), "\n")
}

// DecodeFeeNotice parses content produced by EncodeFeeNotice. Content without
// the marker, without a link, or with unparsable dates is not a notice.
func DecodeFeeNotice(content string) (FeeNotice, bool) {
	trimmed := strings.TrimLeft(content, " \t\r\n")
	if !strings.HasPrefix(trimmed, FeeNoticeMarker) {
		return FeeNotice{}, false
	}

	var n FeeNotice
	var from, to string
	var body []string
	inHeaders := true
	sc := bufio.NewScanner(strings.NewReader(strings.TrimPrefix(trimmed, FeeNoticeMarker)))
	for sc.Scan() {
		line := sc.Text()
		if inHeaders {
			if strings.TrimSpace(line) == "" {
				if n.Link != "" || from != "" || to != "" {
					inHeaders = false
				}
				continue
			}
			key, value, ok := strings.Cut(line, ":")
			if ok {
				switch strings.ToLower(strings.TrimSpace(key)) {
				case "title":
					n.Title = strings.TrimSpace(value)
					continue
				case "link":
					n.Link = strings.TrimSpace(value)
					continue
				case "from":
					from = strings.TrimSpace(value)
					continue
				case "to":
					to = strings.TrimSpace(value)
					continue
				}
			}
			inHeaders = false
		}
		body = append(body, line)
	}

	if n.Link == "" {
		return FeeNotice{}, false
	}
	start, err := ParseDate(from)
	if err != nil {
		return FeeNotice{}, false
	}
	end, err := ParseDate(to)
	if err != nil || end.Before(start) {
		return FeeNotice{}, false
	}
	n.StartDate, n.EndDate = start, end
	n.Body = strings.TrimSpace(strings.Join(body, "\n"))
	return n, true
}

package discovery

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"docnav/internal/domain"
	"docnav/internal/eventbus"
)

// DiscoveryService extracts the navigable elements of a document
type DiscoveryService interface {
	StartScan(ctx context.Context, path string) error
}

// discoveryService is the concrete implementation
type discoveryService struct {
	bus        eventbus.EventBus
	mu         sync.Mutex
	isScanning bool
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(bus eventbus.EventBus) DiscoveryService {
	ds := &discoveryService{
		bus: bus,
	}

	// Subscribe to scan requests
	bus.Subscribe(eventbus.EventScanRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanRequestedEvent); ok {
			go ds.StartScan(context.Background(), event.Path)
		}
	})

	return ds
}

// StartScan parses the document at path and publishes its elements
func (ds *discoveryService) StartScan(ctx context.Context, path string) error {
	ds.mu.Lock()
	if ds.isScanning {
		ds.mu.Unlock()
		return fmt.Errorf("scan already in progress")
	}
	ds.isScanning = true
	ds.mu.Unlock()

	defer func() {
		ds.mu.Lock()
		ds.isScanning = false
		ds.mu.Unlock()
	}()

	ds.bus.Publish(eventbus.ScanStartedEvent{Path: path})

	file, err := os.Open(path)
	if err != nil {
		ds.bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("failed to open document %s", path),
			Err:     err,
		})
		return fmt.Errorf("failed to open document: %w", err)
	}
	defer file.Close()

	doc, err := ParseDocument(path, file)
	if err != nil {
		ds.bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("failed to parse document %s", path),
			Err:     err,
		})
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	ds.bus.Publish(eventbus.ElementsDiscoveredEvent{Document: *doc})
	ds.bus.Publish(eventbus.ScanCompletedEvent{
		Path:          path,
		ElementsFound: len(doc.Elements),
	})

	return nil
}

var (
	headingRe    = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	listItemRe   = regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)\s+(.*)$`)
	mdLinkRe     = regexp.MustCompile(`\[([^\]]+)\]\(([^)\s]+)\)`)
	bareURLRe    = regexp.MustCompile(`https?://[^\s)\]>"']+`)
	mdEmphasisRe = regexp.MustCompile("([*_`]{1,3})([^*_`]+)([*_`]{1,3})")
)

// ParseDocument splits a markdown or plain-text document into navigable
// elements in reading order. Blocks are separated by blank lines; every
// heading and list item is its own element. Elements containing a link
// get that link's destination as their activation target.
func ParseDocument(path string, r io.Reader) (*domain.Document, error) {
	doc := &domain.Document{Path: path}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var block []string
	blockStart := 0
	lineNo := 0

	flush := func() {
		if len(block) == 0 {
			return
		}
		text := strings.Join(block, " ")
		doc.Elements = append(doc.Elements, buildElement(len(doc.Elements), domain.KindParagraph, 0, text, blockStart))
		block = nil
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flush()
			continue
		}

		if m := headingRe.FindStringSubmatch(trimmed); m != nil {
			flush()
			level := len(m[1])
			doc.Elements = append(doc.Elements, buildElement(len(doc.Elements), domain.KindHeading, level, m[2], lineNo))
			continue
		}

		if m := listItemRe.FindStringSubmatch(line); m != nil {
			flush()
			doc.Elements = append(doc.Elements, buildElement(len(doc.Elements), domain.KindListItem, 0, m[1], lineNo))
			continue
		}

		if len(block) == 0 {
			blockStart = lineNo
		}
		block = append(block, trimmed)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc.Title = documentTitle(doc)
	return doc, nil
}

// buildElement classifies a block, extracts its activation target and
// strips the markup from its display text.
func buildElement(id int, kind domain.ElementKind, level int, raw string, line int) domain.Element {
	target := ""
	if m := mdLinkRe.FindStringSubmatch(raw); m != nil {
		target = m[2]
	} else if m := bareURLRe.FindString(raw); m != "" {
		target = m
	}

	text := stripMarkup(raw)

	// A block that is nothing but a link reads as a link element
	if kind == domain.KindParagraph && target != "" {
		if m := mdLinkRe.FindStringSubmatch(strings.TrimSpace(raw)); m != nil && m[0] == strings.TrimSpace(raw) {
			kind = domain.KindLink
			text = m[1]
		} else if strings.TrimSpace(raw) == target {
			kind = domain.KindLink
		}
	}

	return domain.Element{
		ID:     id,
		Kind:   kind,
		Level:  level,
		Text:   text,
		Target: target,
		Line:   line,
	}
}

// stripMarkup replaces markdown links with their text and drops
// emphasis markers, leaving readable display text.
func stripMarkup(s string) string {
	s = mdLinkRe.ReplaceAllString(s, "$1")
	s = mdEmphasisRe.ReplaceAllString(s, "$2")
	return strings.TrimSpace(s)
}

func documentTitle(doc *domain.Document) string {
	for _, e := range doc.Elements {
		if e.Kind == domain.KindHeading {
			return e.Text
		}
	}
	return filepath.Base(doc.Path)
}

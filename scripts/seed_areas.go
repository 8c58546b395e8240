// seed_areas.go — standalone script to parse AREAS.md and seed candidate areas via the API.
//
// Usage:
//
//	go run scripts/seed_areas.go -areas /path/to/AREAS.md -api http://localhost:8710
package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
)

type areaItem struct {
	Name      string   `json:"name"`
	State     string   `json:"state"`
	County    string   `json:"county,omitempty"`
	MetroArea string   `json:"metro_area,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Tier      string   `json:"tier,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// Tier emoji mapping
var tierMap = map[string]string{
	"⭐": "top",
	"🟢": "contender",
	"🟡": "backup",
	"❌": "ruled_out",
}

// Section headers look like "## Texas (TX) #texas #southeast"
var sectionRe = regexp.MustCompile(`^##\s+(.+?)\s+\(([A-Z]{2})\)(.*)$`)

func main() {
	areasPath := flag.String("areas", "AREAS.md", "path to AREAS.md file")
	apiURL := flag.String("api", "http://localhost:8710", "API base URL")
	dryRun := flag.Bool("dry-run", false, "print areas without posting")
	flag.Parse()

	f, err := os.Open(*areasPath)
	if err != nil {
		log.Fatalf("open AREAS.md: %v", err)
	}
	defer f.Close()

	var items []areaItem
	var currentState string
	var currentTags []string
	scanner := bufio.NewScanner(f)

	for scanner.Scan() {
		line := scanner.Text()

		if m := sectionRe.FindStringSubmatch(line); m != nil {
			currentState = m[2]
			currentTags = nil
			for _, tag := range strings.Fields(m[3]) {
				if strings.HasPrefix(tag, "#") {
					currentTags = append(currentTags, strings.TrimPrefix(tag, "#"))
				}
			}
			continue
		}

		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "- ") || currentState == "" {
			continue
		}
		text := strings.TrimPrefix(trimmed, "- ")

		// Detect tier emoji
		tier := ""
		for emoji, t := range tierMap {
			if strings.Contains(text, emoji) {
				tier = t
				text = strings.ReplaceAll(text, emoji, "")
				text = strings.TrimSpace(text)
				break
			}
		}

		// Split "Name, County -- notes" style entries
		notes := ""
		if idx := strings.Index(text, " -- "); idx >= 0 {
			notes = strings.TrimSpace(text[idx+4:])
			text = strings.TrimSpace(text[:idx])
		}
		name := text
		county := ""
		if idx := strings.Index(text, ", "); idx >= 0 {
			name = text[:idx]
			county = strings.TrimSpace(text[idx+2:])
		}

		items = append(items, areaItem{
			Name:   name,
			State:  currentState,
			County: county,
			Tags:   currentTags,
			Tier:   tier,
			Notes:  notes,
		})
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("scan AREAS.md: %v", err)
	}

	log.Printf("parsed %d areas from %s", len(items), *areasPath)

	if *dryRun {
		for i, item := range items {
			tier := "contender"
			if item.Tier != "" {
				tier = item.Tier
			}
			fmt.Printf("[%d] %s, %s (county=%s, tier=%s, tags=%s)\n",
				i+1, item.Name, item.State, item.County, tier, strings.Join(item.Tags, ","))
		}
		return
	}

	client := &http.Client{}
	created, skipped := 0, 0
	for _, item := range items {
		body, _ := json.Marshal(item)
		req, err := http.NewRequest("POST", *apiURL+"/api/v1/areas", bytes.NewReader(body))
		if err != nil {
			log.Printf("skip %q: %v", item.Name, err)
			skipped++
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			log.Printf("skip %q: %v", item.Name, err)
			skipped++
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusCreated {
			created++
		} else {
			log.Printf("skip %q: status %d", item.Name, resp.StatusCode)
			skipped++
		}
	}

	log.Printf("done: %d created, %d skipped", created, skipped)
}

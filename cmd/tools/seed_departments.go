package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gookit/color"
)

// Seeds a running server with the default departments so a fresh
// install has something to sync.
var defaultDepartments = []struct {
	Name        string
	Description string
}{
	{"Cardiology", "Cardiology department calendar"},
	{"Emergency Medicine", "Emergency department calendar"},
	{"Internal Medicine", "Internal medicine department calendar"},
	{"Surgery", "Surgery department calendar"},
}

func main() {
	server := flag.String("server", "http://localhost:5000", "Base URL of the calendar sync server")
	flag.Parse()

	color.Cyan.Printf("Seeding %d departments on %s...\n\n", len(defaultDepartments), *server)

	client := &http.Client{Timeout: 10 * time.Second}
	failures := 0
	for _, department := range defaultDepartments {
		if err := createDepartment(client, *server, department.Name, department.Description); err != nil {
			color.Red.Printf("  ✗ %s: %v\n", department.Name, err)
			failures++
			continue
		}
		color.Green.Printf("  ✓ %s\n", department.Name)
	}

	fmt.Println()
	if failures > 0 {
		color.Yellow.Printf("Done with %d failure(s)\n", failures)
		os.Exit(1)
	}
	color.Green.Println("All departments created")
}

func createDepartment(client *http.Client, server, name, description string) error {
	body, err := json.Marshal(map[string]string{
		"name":        name,
		"description": description,
	})
	if err != nil {
		return err
	}

	resp, err := client.Post(server+"/api/departments", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated:
		return nil
	case http.StatusConflict:
		return fmt.Errorf("already exists")
	default:
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"calsync-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	// On scanne les enregistrements, pas les index secondaires idx:
	prefix := flag.String("prefix", "dept:", "Prefix to scan (dept: or evt:)")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithLoggingLevel(badger.ERROR).
		WithReadOnly(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	color.Cyan.Printf("Scanning %s with prefix %q\n\n", *dbPath, *prefix)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "ID", "Label", "Date", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			// Les index secondaires ne portent que des références
			if strings.HasPrefix(key, "idx:") {
				continue
			}

			err := item.Value(func(v []byte) error {
				table.Append(describe(key, v))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func describe(key string, val []byte) []string {
	switch {
	case strings.HasPrefix(key, "dept:"):
		var department domain.Department
		if err := json.Unmarshal(val, &department); err != nil {
			return rawRow(key, val, err)
		}
		return []string{key, "DEPARTMENT", shorten(string(department.ID)), department.Name, "-", department.Description}
	case strings.HasPrefix(key, "evt:"):
		var event domain.Event
		if err := json.Unmarshal(val, &event); err != nil {
			return rawRow(key, val, err)
		}
		return []string{key, "EVENT", shorten(event.ID), event.Title, event.EventDate, event.Time}
	default:
		return []string{key, "RAW", "--------", "-", "-", fmt.Sprintf("%d bytes", len(val))}
	}
}

func rawRow(key string, val []byte, err error) []string {
	fmt.Printf("Error unmarshaling key %s: %v\n", key, err)
	return []string{key, "RAW", "--------", "-", "-", fmt.Sprintf("%d bytes", len(val))}
}

func shorten(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

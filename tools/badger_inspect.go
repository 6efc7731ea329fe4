package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"forum/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/database"
	"github.com/olekukonko/tablewriter"
)

// Dumps the forum keyspace of a badger directory without taking its lock.
func main() {
	dbPath := flag.String("db", database.DefaultPath, "Path to badger DB")
	prefix := flag.String("prefix", "feed:", "Prefix to scan")
	flag.Parse()

	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Kind", "Timestamp", "Author", "Detail"})
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
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			table.Append(describe(key, value))
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
}

func describe(key string, value []byte) []string {
	switch {
	case strings.HasPrefix(key, "feed:msg:"):
		message, err := repositories.DecodeRecord(value)
		if err != nil {
			return []string{key, "MESSAGE", "", "", fmt.Sprintf("undecodable: %v", err)}
		}
		return []string{key, "MESSAGE", message.CreatedAt.Format(time.RFC3339Nano),
			message.AuthorDisplayName + " (" + message.AuthorID + ")", message.Text}
	case strings.HasPrefix(key, "feed:idx:"):
		return []string{key, "INDEX", "", "", string(value)}
	case strings.HasPrefix(key, "feed:watch:"):
		return []string{key, "WATCH", "", "", ""}
	case strings.HasPrefix(key, "user:"):
		// Never print password hashes
		return []string{key, "USER", "", "", fmt.Sprintf("%d bytes", len(value))}
	default:
		return []string{key, "RAW", "", "", fmt.Sprintf("%d bytes", len(value))}
	}
}

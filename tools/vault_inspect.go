package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"chat-vault/internal"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

// Local mirrors of the stored JSON shapes; the tool reads raw values so it
// stays usable even when half the keyspace fails to decode.
type userRow struct {
	DisplayName  string `json:"display_name"`
	PasswordHash string `json:"password_hash"`
	Color        string `json:"color"`
	Online       bool   `json:"online"`
	PublicKey    []byte `json:"public_key"`
}

type roomRow struct {
	Description string `json:"description"`
	KeyID       string `json:"key_id"`
	PublicKey   []byte `json:"public_key"`
	PrivateKey  []byte `json:"private_key"`
}

func main() {
	dbPath := flag.String("db", "", "Path to badger DB (defaults to BADGER_FILEPATH)")
	flag.Parse()

	path := *dbPath
	if path == "" {
		// Same bootstrap as the service: .env first, then the environment.
		_ = godotenv.Load()
		var config internal.Config
		if _, err := env.UnmarshalFromEnviron(&config); err != nil {
			log.Fatal("no -db flag and config error: ", err)
		}
		path = config.BadgerFilepath
	}

	db, err := badger.Open(badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	edges := map[string][]string{} // username -> rooms, from the user-major edges

	err = db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte("edge:user:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rest := strings.SplitN(string(it.Item().Key()[len(prefix):]), ":", 2)
			if len(rest) != 2 {
				continue
			}
			edges[rest[0]] = append(edges[rest[0]], rest[1])
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning edges: ", err)
	}

	header := color.New(color.BgBlack, color.FgGreen)

	fmt.Println(header.Render("== Users =="))
	userTable := newTable([]string{"Username", "Display Name", "Color", "Online", "Client Key", "Rooms"})
	userCount := scanRecords(db, "user:", func(name string, value []byte) []string {
		var u userRow
		if err := json.Unmarshal(value, &u); err != nil {
			fmt.Printf("Error unmarshaling user %s: %v\n", name, err)
			return nil
		}
		rooms := edges[name]
		sort.Strings(rooms)
		return []string{
			name, u.DisplayName, u.Color,
			fmt.Sprintf("%t", u.Online),
			fmt.Sprintf("%t", len(u.PublicKey) > 0),
			strings.Join(rooms, ", "),
		}
	}, userTable)
	userTable.Render()

	fmt.Println(header.Render("== Rooms =="))
	roomTable := newTable([]string{"Name", "Description", "Key ID", "Public Key Bytes"})
	roomCount := scanRecords(db, "room:", func(name string, value []byte) []string {
		var r roomRow
		if err := json.Unmarshal(value, &r); err != nil {
			fmt.Printf("Error unmarshaling room %s: %v\n", name, err)
			return nil
		}
		return []string{name, r.Description, r.KeyID, fmt.Sprintf("%d", len(r.PublicKey))}
	}, roomTable)
	roomTable.Render()

	edgeCount := 0
	for _, rooms := range edges {
		edgeCount += len(rooms)
	}
	color.Green.Printf("%d users, %d rooms, %d membership edges\n", userCount, roomCount, edgeCount)
}

// scanRecords walks one record prefix and appends a row per decodable value.
// A bad value is reported and skipped instead of stopping the whole dump.
func scanRecords(db *badger.DB, prefix string, toRow func(name string, value []byte) []string, table *tablewriter.Table) int {
	count := 0
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			name := string(item.Key()[len(prefix):])
			err := item.Value(func(v []byte) error {
				if row := toRow(name, v); row != nil {
					table.Append(row)
					count++
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Error while scanning ", prefix, ": ", err)
	}
	return count
}

func newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
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
	return table
}

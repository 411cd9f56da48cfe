package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"outlet-assistant/internal/model"
)

type sampleOutlet struct {
	name        string
	address     string
	city        string
	state       string
	postcode    string
	latitude    float64
	longitude   float64
	phone       string
	email       string
	openingTime string
	closingTime string
	is24Hours   bool
	hasDriveThr bool
	hasWifi     bool
	hasParking  bool
	services    []string
}

var sampleOutlets = []sampleOutlet{
	{
		name: "ZUS Coffee KLCC", address: "Lot G-23A, Ground Floor, Suria KLCC, 50088 Kuala Lumpur",
		city: "Kuala Lumpur", state: "Federal Territory of Kuala Lumpur", postcode: "50088",
		latitude: 3.1570, longitude: 101.7107, phone: "+603-2382-2828", email: "klcc@zuscoffee.com",
		openingTime: "07:00", closingTime: "22:00", hasWifi: true, hasParking: true,
		services: []string{"espresso", "cold brew", "pastries", "sandwiches", "wifi", "takeaway"},
	},
	{
		name: "ZUS Coffee Bukit Bintang", address: "Lot LG-40, Lower Ground Floor, Pavilion KL, 168 Jalan Bukit Bintang, 55100 Kuala Lumpur",
		city: "Kuala Lumpur", state: "Federal Territory of Kuala Lumpur", postcode: "55100",
		latitude: 3.1478, longitude: 101.7147, phone: "+603-2148-8888", email: "pavilion@zuscoffee.com",
		openingTime: "08:00", closingTime: "23:00", hasWifi: true, hasParking: true,
		services: []string{"espresso", "cold brew", "pastries", "sandwiches", "wifi", "takeaway", "dine-in"},
	},
	{
		name: "ZUS Coffee SS15 Subang", address: "47-G, Jalan SS 15/4D, SS 15, 47500 Subang Jaya, Selangor",
		city: "Subang Jaya", state: "Selangor", postcode: "47500",
		latitude: 3.0738, longitude: 101.5861, phone: "+603-5634-5555", email: "ss15@zuscoffee.com",
		openingTime: "07:00", closingTime: "21:00", hasDriveThr: true, hasWifi: true, hasParking: true,
		services: []string{"espresso", "cold brew", "pastries", "sandwiches", "wifi", "takeaway", "drive-thru", "delivery"},
	},
	{
		name: "ZUS Coffee Damansara Utama", address: "G-03, Ground Floor, Damansara Uptown, Jalan SS 21/37, Damansara Utama, 47400 Petaling Jaya, Selangor",
		city: "Petaling Jaya", state: "Selangor", postcode: "47400",
		latitude: 3.1359, longitude: 101.6253, phone: "+603-7733-9999", email: "damansara@zuscoffee.com",
		openingTime: "06:30", closingTime: "22:30", hasWifi: true, hasParking: true,
		services: []string{"espresso", "cold brew", "pastries", "sandwiches", "wifi", "takeaway", "dine-in", "meetings"},
	},
	{
		name: "ZUS Coffee KL Gateway", address: "LG-18, Lower Ground Floor, KL Gateway Mall, No.2, Jalan Kerinchi, Bangsar South, 59200 Kuala Lumpur",
		city: "Kuala Lumpur", state: "Federal Territory of Kuala Lumpur", postcode: "59200",
		latitude: 3.1167, longitude: 101.6692, phone: "+603-2201-7777", email: "klgateway@zuscoffee.com",
		openingTime: "07:30", closingTime: "21:30", hasWifi: true, hasParking: true,
		services: []string{"espresso", "cold brew", "pastries", "sandwiches", "wifi", "takeaway", "dine-in"},
	},
	{
		name: "ZUS Coffee Sunway Pyramid", address: "LG2.74A, Lower Ground 2, Sunway Pyramid, No. 3, Jalan PJS 11/15, Bandar Sunway, 47500 Subang Jaya, Selangor",
		city: "Subang Jaya", state: "Selangor", postcode: "47500",
		latitude: 3.0733, longitude: 101.6067, phone: "+603-7492-8888", email: "sunway@zuscoffee.com",
		openingTime: "08:00", closingTime: "22:00", hasWifi: true, hasParking: true,
		services: []string{"espresso", "cold brew", "pastries", "sandwiches", "wifi", "takeaway", "dine-in", "student-friendly"},
	},
	{
		name: "ZUS Coffee Setia Alam Drive Thru", address: "No. 23, Persiaran Setia Dagang, Setia Alam, Seksyen U13, 40170 Shah Alam, Selangor",
		city: "Shah Alam", state: "Selangor", postcode: "40170",
		latitude: 3.1024, longitude: 101.4444, phone: "+603-3359-6666", email: "setiaalam@zuscoffee.com",
		openingTime: "06:00", closingTime: "24:00", is24Hours: true, hasDriveThr: true, hasWifi: true, hasParking: true,
		services: []string{"espresso", "cold brew", "pastries", "sandwiches", "wifi", "takeaway", "drive-thru", "24-hours", "delivery"},
	},
	{
		name: "ZUS Coffee IOI City Mall", address: "L1-45, Level 1, IOI City Mall, Lebuh IRC, IOI Resort City, 62502 Putrajaya, Selangor",
		city: "Putrajaya", state: "Selangor", postcode: "62502",
		latitude: 2.9264, longitude: 101.6964, phone: "+603-8945-5555", email: "ioicity@zuscoffee.com",
		openingTime: "09:00", closingTime: "22:00", hasWifi: true, hasParking: true,
		services: []string{"espresso", "cold brew", "pastries", "sandwiches", "wifi", "takeaway", "dine-in", "family-friendly"},
	},
}

// Populate resets the outlets table to the sample dataset.
func (d *implDatabase) Populate(ctx context.Context) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin populate tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM outlets"); err != nil {
		return fmt.Errorf("clear outlets: %w", err)
	}

	const insert = `INSERT INTO outlets
		(name, address, city, state, postcode, latitude, longitude, phone, email,
		 opening_time, closing_time, is_24_hours, has_drive_thru, has_wifi, has_parking, services)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for _, o := range sampleOutlets {
		services, err := json.Marshal(o.services)
		if err != nil {
			return fmt.Errorf("marshal services for %s: %w", o.name, err)
		}

		_, err = tx.ExecContext(ctx, insert,
			o.name, o.address, o.city, o.state, o.postcode, o.latitude, o.longitude,
			o.phone, o.email, o.openingTime, o.closingTime,
			o.is24Hours, o.hasDriveThr, o.hasWifi, o.hasParking, string(services),
		)
		if err != nil {
			return fmt.Errorf("insert outlet %s: %w", o.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit populate tx: %w", err)
	}

	d.l.Infof(ctx, "outlets db populated with %d outlets", len(sampleOutlets))
	return nil
}

// ExecuteSelect runs a SELECT statement and returns generic rows.
func (d *implDatabase) ExecuteSelect(ctx context.Context, query string) ([]model.OutletRow, error) {
	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	results := make([]model.OutletRow, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(model.OutletRow, len(columns))
		for i, col := range columns {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[col] = v
		}
		results = append(results, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return results, nil
}

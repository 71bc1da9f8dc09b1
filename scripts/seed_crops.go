// seed_crops.go — standalone script to load the reference crop catalog into a
// running Cropwise instance via the admin API.
//
// Usage:
//
//	go run scripts/seed_crops.go -api http://localhost:8700 -token $CROPWISE_ADMIN_TOKEN
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/Verdantly-Ag/Cropwise/internal/catalog"
)

func main() {
	apiURL := flag.String("api", "http://localhost:8700", "Cropwise API base URL")
	token := flag.String("token", "", "admin bearer token")
	dryRun := flag.Bool("dry-run", false, "print crops without posting")
	flag.Parse()

	crops := catalog.SeedCrops()

	if *dryRun {
		for _, crop := range crops {
			fmt.Printf("%-10s  %s  pH %.1f-%.1f  %s\n",
				crop.Name, crop.Season, crop.OptimalPHMin, crop.OptimalPHMax,
				crop.SuitableSoilTypes)
		}
		fmt.Printf("%d crops (dry run, nothing posted)\n", len(crops))
		return
	}

	client := &http.Client{}
	created := 0
	for _, crop := range crops {
		payload, err := json.Marshal(crop)
		if err != nil {
			log.Fatalf("marshal %s: %v", crop.Name, err)
		}

		req, err := http.NewRequest("POST", *apiURL+"/api/v1/crops", bytes.NewBuffer(payload))
		if err != nil {
			log.Fatalf("build request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if *token != "" {
			req.Header.Set("Authorization", "Bearer "+*token)
		}

		resp, err := client.Do(req)
		if err != nil {
			log.Fatalf("post %s: %v", crop.Name, err)
		}
		if resp.StatusCode != http.StatusCreated {
			var body map[string]interface{}
			json.NewDecoder(resp.Body).Decode(&body)
			resp.Body.Close()
			log.Fatalf("post %s: status %d: %v", crop.Name, resp.StatusCode, body)
		}
		resp.Body.Close()
		created++
		fmt.Printf("created %s\n", crop.Name)
	}
	fmt.Printf("%d crops seeded\n", created)
}

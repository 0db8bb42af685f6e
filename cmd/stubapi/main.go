// Command stubapi serves fixture registry data for local development, so
// the dashboard can run without a real registry endpoint.  Supply figures
// drift a little per request to make polling visible.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	nt "carbonboard/entity"
)

var projects = []nt.Project{
	{ID: "VCS-674", Name: "Rimba Raya Biodiversity Reserve", Location: "Indonesia", Type: "redd+", Registry: "verra", Methodology: "VM0007", Supply: 1_310_000, Retired: 412_000, PriceUSD: 6.40, Vintage: 2019},
	{ID: "VCS-612", Name: "Kasigau Corridor", Location: "Kenya", Type: "redd+", Registry: "verra", Methodology: "VM0009", Supply: 2_450_000, Retired: 1_100_000, PriceUSD: 8.15, Vintage: 2018},
	{ID: "GS-3129", Name: "Solar Bundle Maharashtra", Location: "India", Type: "solar", Registry: "gold-standard", Methodology: "AMS-I.D", Supply: 640_000, Retired: 98_000, PriceUSD: 2.90, Vintage: 2021},
	{ID: "GS-2774", Name: "Improved Cookstoves Uganda", Location: "Uganda", Type: "cookstoves", Registry: "gold-standard", Methodology: "AMS-II.G", Supply: 220_000, Retired: 140_000, PriceUSD: 9.75, Vintage: 2020},
	{ID: "ACR-501", Name: "Prairie Wind Farm IV", Location: "USA", Type: "wind", Registry: "acr", Methodology: "ACM0002", Supply: 880_000, Retired: 120_000, PriceUSD: 3.10, Vintage: 2021},
	{ID: "VCS-985", Name: "Katingan Peatland Restoration", Location: "Indonesia", Type: "redd+", Registry: "verra", Methodology: "VM0007", Supply: 3_200_000, Retired: 1_750_000, PriceUSD: 7.80, Vintage: 2017},
	{ID: "GS-4410", Name: "Biogas Program Vietnam", Location: "Vietnam", Type: "biogas", Registry: "gold-standard", Methodology: "AMS-I.C", Supply: 175_000, Retired: 88_000, PriceUSD: 6.10, Vintage: 2022},
	{ID: "ACR-388", Name: "Delta Blue Carbon", Location: "Pakistan", Type: "blue-carbon", Registry: "acr", Methodology: "VM0033", Supply: 1_050_000, Retired: 310_000, PriceUSD: 11.20, Vintage: 2020},
	{ID: "VCS-1477", Name: "Cordillera Azul National Park", Location: "Peru", Type: "redd+", Registry: "verra", Methodology: "VM0015", Supply: 2_890_000, Retired: 960_000, PriceUSD: 5.95, Vintage: 2019},
	{ID: "GS-5521", Name: "Solar Water Heating Tunisia", Location: "Tunisia", Type: "solar", Registry: "gold-standard", Methodology: "AMS-I.J", Supply: 96_000, Retired: 12_000, PriceUSD: 4.30, Vintage: 2022},
}

func main() {

	var port int
	flag.IntVar(&port, "port", 8099, "listen port")
	flag.Parse()

	router := chi.NewRouter()
	router.Use(middleware.Logger)

	router.Get("/v1/projects", getProjects)
	router.Get("/v1/retirements", getRetirements)
	router.Get("/v1/token-stats", getTokenStats)

	addr := fmt.Sprintf(":%d", port)
	log.Printf("stubapi listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}

func getProjects(w http.ResponseWriter, r *http.Request) {

	jittered := make([]nt.Project, len(projects))
	copy(jittered, projects)
	for i := range jittered {
		jittered[i].Retired += float64(rand.Intn(500))
	}

	writeJSON(w, map[string]any{"projects": jittered})
}

func getRetirements(w http.ResponseWriter, r *http.Request) {

	total := 0.0
	for _, prj := range projects {
		total += prj.Retired
	}

	writeJSON(w, nt.RetirementStats{
		TotalRetired:  total,
		RetiredToday:  float64(rand.Intn(2000)),
		Beneficiaries: 87,
	})
}

func getTokenStats(w http.ResponseWriter, r *http.Request) {

	writeJSON(w, nt.TokenStats{
		Bridged:     21_400_000,
		Outstanding: 18_600_000,
		MarketCap:   64_000_000 + float64(rand.Intn(100_000)),
	})
}

func writeJSON(w http.ResponseWriter, payload any) {

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("encode failed: %v", err)
	}
}

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Запросы к сервису отслеживания по операциям и кодам ответа",
	}, []string{"operation", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запроса в секундах",
		Buckets: []float64{0.01, 0.05, 0.1, 0.3, 0.5, 1},
	}, []string{"operation"})
)

type createResponse struct {
	TrackingNumber string `json:"tracking_number"`
}

var client = &http.Client{Timeout: 5 * time.Second}

func do(operation string, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := client.Do(req)
	requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		requestsTotal.WithLabelValues(operation, "error").Inc()
		return nil, err
	}
	requestsTotal.WithLabelValues(operation, fmt.Sprint(resp.StatusCode)).Inc()
	return resp, nil
}

func createShipment(target string, n int) (string, error) {
	body, _ := json.Marshal(map[string]any{
		"sender_name":      fmt.Sprintf("Sender %d", n),
		"sender_email":     "sender@example.com",
		"sender_phone":     "+10000000000",
		"sender_address":   "1 Origin St",
		"receiver_name":    fmt.Sprintf("Receiver %d", n),
		"receiver_phone":   "+20000000000",
		"receiver_address": "2 Destination Ave",
		"package_type":     "Box",
		"weight":           1 + rand.Float64()*10,
		"shipment_cost":    10 + rand.Float64()*90,
	})

	req, err := http.NewRequest(http.MethodPost, target+"/shipments", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := do("create", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var created createResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", err
	}
	return created.TrackingNumber, nil
}

func readHistory(target, trackingNumber string) error {
	req, err := http.NewRequest(http.MethodGet, target+"/shipments/"+trackingNumber+"/status", nil)
	if err != nil {
		return err
	}
	resp, err := do("history", req)
	if err != nil {
		return err
	}
	return resp.Body.Close()
}

func main() {
	target := flag.String("target", "http://localhost:8080", "tracking service base url")
	interval := flag.Duration("interval", time.Second, "pause between iterations")
	reads := flag.Int("reads", 5, "history reads per created shipment")
	flag.Parse()

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Println(http.ListenAndServe(":2112", nil)) //nolint:gosec // локальный генератор нагрузки
	}()

	for n := 0; ; n++ {
		trackingNumber, err := createShipment(*target, n)
		if err != nil {
			log.Printf("create shipment: %v", err)
		}
		for i := 0; trackingNumber != "" && i < *reads; i++ {
			if err := readHistory(*target, trackingNumber); err != nil {
				log.Printf("read history: %v", err)
			}
		}
		time.Sleep(*interval)
	}
}

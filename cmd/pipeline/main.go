package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/config"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/logging"
	"github.com/AswinSuresh-26/self-healing-supply-chain/internal/pipeline"
)

func main() {
	cycles := flag.Int("cycles", 1, "pipeline cycles to run; 0 runs until interrupted")
	interval := flag.Duration("interval", 30*time.Second, "pause between cycles")
	seed := flag.Int64("seed", 0, "sensing rng seed; 0 seeds from the clock")
	dump := flag.Bool("dump", false, "print each cycle report as JSON")
	flag.Parse()

	_ = godotenv.Load()
	logging.Init("pipeline")
	cfg := config.Load()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	orch := pipeline.NewOrchestrator(cfg, rand.New(rand.NewSource(*seed)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	for cycle := 1; *cycles <= 0 || cycle <= *cycles; cycle++ {
		report := orch.RunCycle(ctx)
		printReport(cycle, report)

		if *dump {
			if data, err := json.MarshalIndent(report, "", "  "); err == nil {
				fmt.Println(string(data))
			}
		}

		if cycle == *cycles {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(*interval):
		}
	}
}

func printReport(cycle int, report pipeline.Report) {
	status := "ok"
	if !report.Success {
		status = "degraded"
	}

	fmt.Printf("\ncycle %d: %s in %.2fs\n", cycle, status, report.TotalDurationSeconds)
	for _, stage := range report.Stages {
		line := fmt.Sprintf("  %-18s count=%-3d %.2fms", stage.Stage, stage.Count, stage.DurationMS)
		if !stage.Success {
			line += "  FAILED: " + stage.Error
		}
		fmt.Println(line)
	}

	if len(report.Risks) > 0 {
		top := report.Risks[0]
		fmt.Printf("\n  top risk  %s\n", top.Title)
		fmt.Printf("            level=%s score=%.3f urgency=%s suppliers=%d delay=%dd impact=$%.2f\n",
			top.RiskLevel, top.RiskScore, top.MitigationUrgency,
			top.AffectedSupplierCount, top.EstimatedDelayDays, top.EstimatedFinancialImpact)
	}
	for _, alert := range report.Alerts {
		fmt.Printf("  alert     [%s] %s\n", alert.Priority, alert.Title)
	}
	for _, plan := range report.Plans {
		fmt.Printf("  plan      %s: %d actions, %dd, $%.2f\n",
			plan.Title, len(plan.Actions), plan.EstimatedRecoveryDays, plan.TotalEstimatedCost)
	}
	for _, contract := range report.Contracts {
		fmt.Printf("  contract  %s with %s: $%.2f over %dd\n",
			contract.ContractType, contract.SupplierName, contract.TotalValue, contract.DurationDays)
	}
}

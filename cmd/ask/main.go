package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"

	"helix/internal/bootstrap"
	"helix/internal/config"
	"helix/internal/models"
	"helix/internal/query"
)

var (
	question   = flag.String("q", "", "Ask a single question and exit")
	jsonOutput = flag.Bool("json", false, "Print the query response as JSON")
)

func main() {
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupts
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Println("\nShutting down...")
		cancel()
		os.Exit(0)
	}()

	cfg := config.Load()
	logger := cfg.NewLogger()

	c, database, err := bootstrap.LoadCorpus(ctx, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading corpus: %v\n", err)
		os.Exit(1)
	}
	if database != nil {
		defer database.Close()
	}

	svc, err := bootstrap.NewService(cfg, c, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring answers: %v\n", err)
		os.Exit(1)
	}

	out := &printer{w: os.Stdout, previewLen: cfg.ContextPreviewLength, json: *jsonOutput}

	if *question != "" {
		if err := ask(ctx, svc, out, *question); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	fmt.Println(boldGreen("Helix research assistant"))
	fmt.Printf("Answers: %s, corpus: %d records, %d targets\n",
		boldCyan(svc.Mode()), c.RecordCount(), c.TargetCount())
	fmt.Println("Type a question and press Enter. Type 'exit' or press Ctrl+C to quit.")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(boldGreen("Query: "))
		if !scanner.Scan() {
			break
		}
		input := scanner.Text()

		switch strings.ToLower(strings.TrimSpace(input)) {
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return
		case "":
			continue
		}

		if err := ask(ctx, svc, out, input); err != nil {
			color.Red("Error: %v", err)
		}
		fmt.Println()
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

func ask(ctx context.Context, svc *query.Service, out *printer, q string) error {
	result, err := svc.Handle(ctx, q)
	if err != nil {
		if errors.Is(err, query.ErrUpstream) {
			return fmt.Errorf("failed to process query: %w", err)
		}
		return err
	}
	return out.print(query.NewResponse(result, out.previewLen))
}

type printer struct {
	w          io.Writer
	previewLen int
	json       bool
}

func (p *printer) print(resp models.QueryResponse) error {
	if p.json {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	heading := color.New(color.FgCyan, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	outlier := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintln(p.w, heading("Answer"))
	fmt.Fprintln(p.w, resp.Answer)
	fmt.Fprintln(p.w)

	fmt.Fprintln(p.w, heading(fmt.Sprintf("Matched records (%d)", len(resp.MatchedRecords))))
	for _, r := range resp.MatchedRecords {
		line := fmt.Sprintf("  %s  %-6s %-12s %-20s %s", r.Date, r.Gene, r.MouseModel, r.Tissue, r.ValidationStatus)
		if r.ValidationStatus == models.StatusOutlier {
			line = outlier(line)
		}
		fmt.Fprintln(p.w, line)
	}
	fmt.Fprintln(p.w)

	fmt.Fprintln(p.w, heading("Context preview"))
	fmt.Fprintln(p.w, dim(resp.ContextPreview))
	fmt.Fprintf(p.w, "%s\n", dim(fmt.Sprintf("%d records, %d targets, %s, %s",
		resp.Counters.TotalRecords, resp.Counters.TotalTargets, resp.Counters.Mode, resp.Counters.QueryID)))
	return nil
}

// samcheck is an interactive hand checker: give it a hand, get the
// declaration verdict, the best play plans and the strength breakdown.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"baosam/internal/advisor"
	"baosam/internal/config"
	"baosam/internal/domain"
	"baosam/internal/engine"
)

func main() {
	configFlag := flag.String("config", "", "path to JSON config file")
	handFlag := flag.String("hand", "", "comma-separated hand, e.g. 3s,3c,7h,Jd,2s")
	topKFlag := flag.Int("top", 3, "number of ranked sequences to show")
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			pterm.Error.Printfln("%v", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Sam", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("check", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}

	input := *handFlag
	if input == "" {
		input, _ = pterm.DefaultInteractiveTextInput.
			WithDefaultText("Enter your hand (e.g. 3s,3c,7h,Jd,2s)").
			Show()
	}

	hand, err := parseHandInput(input)
	if err != nil {
		pterm.Error.Printfln("%v", err)
		os.Exit(1)
	}

	scorer := engine.NewScorer(engine.DefaultStrengthConfig)
	chain := advisor.NewChain(
		advisor.NewPatternProvider(cfg.ModelDir),
		advisor.NewHeuristicProvider(scorer),
	)
	adv := advisor.New(scorer, cfg.Gate, cfg.EngineSearch(), chain, cfg.Advisor)

	decision := adv.Decide(hand)
	printDecision(decision)

	sequences := adv.Sequences(hand, *topKFlag, true)
	printSequences(sequences)
}

func parseHandInput(input string) ([]domain.Card, error) {
	var hand []domain.Card
	for _, token := range strings.Split(input, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		card, err := domain.ParseCard(token)
		if err != nil {
			return nil, err
		}
		hand = append(hand, card)
	}
	if len(hand) == 0 {
		return nil, fmt.Errorf("empty hand")
	}
	if !domain.ValidHand(hand) {
		return nil, fmt.Errorf("hand contains duplicate cards")
	}
	return hand, nil
}

func printDecision(d advisor.Decision) {
	pterm.Println()
	if d.Declare {
		pterm.Success.Printfln("DECLARE (win probability %.1f%%, via %s)", d.WinProbability*100, d.Provider)
	} else {
		pterm.Warning.Printfln("DO NOT DECLARE: %s", d.Reason)
	}

	profile := d.Gate.Profile
	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"Cards", "Combos", "Weak", "Strong", "Unbeatable", "Avg strength"},
		{
			fmt.Sprint(profile.TotalCards),
			fmt.Sprint(profile.TotalCombos),
			fmt.Sprint(profile.WeakCombos),
			fmt.Sprint(profile.StrongCombos),
			fmt.Sprint(profile.UnbeatableCombos),
			fmt.Sprintf("%.3f", profile.AvgStrength),
		},
	}).Render()
}

func printSequences(sequences []domain.Sequence) {
	for i, seq := range sequences {
		pterm.Println()
		pterm.DefaultSection.Printfln("Plan %d  score=%.3f  coverage=%.0f%%", i+1, seq.Score, seq.Coverage*100)

		data := pterm.TableData{{"#", "Combo", "Strength"}}
		for j, combo := range seq.Combos {
			data = append(data, []string{
				fmt.Sprint(j + 1),
				combo.String(),
				fmt.Sprintf("%.3f", combo.Strength),
			})
		}
		pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	}
}

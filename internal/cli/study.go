package cli

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/justvibes99/enumerate/internal/domain"
	"github.com/justvibes99/enumerate/internal/match"
	"github.com/justvibes99/enumerate/internal/session"
	"github.com/justvibes99/enumerate/internal/sm2"
)

var (
	studyMode      string
	studyDirection string
)

var studyCmd = &cobra.Command{
	Use:   "study <collection-id>",
	Short: "Run a study session over a collection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		s, _, err := openStore(cmd)
		if err != nil {
			exitErr("open store", err)
		}
		defer s.Close()

		mode, err := domain.ParseMode(studyMode)
		if err != nil {
			exitErr("parse mode", err)
		}
		direction, err := domain.ParseDirection(studyDirection)
		if err != nil {
			exitErr("parse direction", err)
		}

		ctx := cmd.Context()
		collection, err := s.GetCollection(ctx, args[0])
		if err != nil {
			exitErr("load collection", err)
		}

		engine := session.NewEngine(s)
		quiz, err := engine.StartQuiz(ctx, collection, mode, direction)
		if err != nil {
			exitErr("start quiz", err)
		}
		if quiz.State() == session.Empty {
			fmt.Println("Nothing to study right now. Come back later.")
			return
		}

		in := bufio.NewReader(os.Stdin)
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		fmt.Printf("Studying %q: %d cards (%s, %s)\n\n", collection.Title, quiz.TotalCards(), mode, direction)

		for quiz.State() == session.InProgress {
			card, ok := quiz.CurrentCard()
			if !ok {
				break
			}
			item := collection.FindItem(card.ItemID)
			if item == nil {
				exitErr("study", fmt.Errorf("card %s references a missing item", card.ID))
			}

			prompt, answer := promptAnswer(item, direction)
			fmt.Printf("[%d/%d] %s\n", quiz.Index()+1, quiz.TotalCards(), prompt)
			started := time.Now()

			var quality int
			var userAnswer string
			switch mode {
			case domain.Flashcard:
				quality, err = askFlashcard(in, answer)
			case domain.TypedAnswer:
				quality, userAnswer, err = askTyped(in, answer)
			case domain.MultipleChoice:
				quality, userAnswer, err = askChoice(in, rng, collection, item, direction)
			}
			if err != nil {
				exitErr("read answer", err)
			}

			elapsed := time.Since(started).Milliseconds()
			if err := quiz.Answer(ctx, quality, userAnswer, elapsed); err != nil {
				exitErr("answer", err)
			}
			fmt.Println()
		}

		correct := 0
		for _, r := range quiz.Results() {
			if r.Correct {
				correct++
			}
		}
		fmt.Printf("Done: %d/%d correct.\n", correct, quiz.TotalCards())
	},
}

func init() {
	studyCmd.Flags().StringVar(&studyMode, "mode", string(domain.Flashcard), "Quiz mode: flashcard, multiple-choice, typed-answer")
	studyCmd.Flags().StringVar(&studyDirection, "direction", string(domain.Forward), "Study direction: forward, reverse")
	RootCmd.AddCommand(studyCmd)
}

func promptAnswer(item *domain.Item, direction domain.Direction) (string, string) {
	if direction == domain.Reverse {
		return item.Match, item.Prompt
	}
	return item.Prompt, item.Match
}

func askFlashcard(in *bufio.Reader, answer string) (int, error) {
	fmt.Print("  (press enter to reveal) ")
	if _, err := in.ReadString('\n'); err != nil {
		return 0, err
	}
	fmt.Printf("  -> %s\n", answer)
	for {
		fmt.Printf("  How well did you know it? (%d-%d): ", sm2.MinQuality, sm2.MaxQuality)
		line, err := in.ReadString('\n')
		if err != nil {
			return 0, err
		}
		q, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && q >= sm2.MinQuality && q <= sm2.MaxQuality {
			return q, nil
		}
	}
}

func askTyped(in *bufio.Reader, answer string) (int, string, error) {
	fmt.Print("  your answer: ")
	line, err := in.ReadString('\n')
	if err != nil {
		return 0, "", err
	}
	given := strings.TrimSpace(line)

	res := match.Grade(given, answer)
	switch {
	case res.Exact:
		fmt.Println("  correct!")
	case res.Close:
		fmt.Printf("  close! it was: %s\n", answer)
	default:
		fmt.Printf("  wrong. it was: %s\n", answer)
	}
	return res.Quality, given, nil
}

// choiceOptions builds the multiple-choice option list: the correct
// answer plus up to three distractors drawn from the other items.
// Options are deduplicated by text, since items can share answer text
// and a duplicate option would be indistinguishable from the correct
// one.
func choiceOptions(rng *rand.Rand, collection *domain.Collection, item *domain.Item, direction domain.Direction) []string {
	_, answer := promptAnswer(item, direction)

	options := []string{answer}
	seen := map[string]bool{answer: true}
	perm := rng.Perm(len(collection.Items))
	for _, i := range perm {
		if len(options) == 4 {
			break
		}
		other := collection.Items[i]
		if other.ID == item.ID {
			continue
		}
		_, distractor := promptAnswer(&other, direction)
		if seen[distractor] {
			continue
		}
		seen[distractor] = true
		options = append(options, distractor)
	}
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func askChoice(in *bufio.Reader, rng *rand.Rand, collection *domain.Collection, item *domain.Item, direction domain.Direction) (int, string, error) {
	_, answer := promptAnswer(item, direction)
	options := choiceOptions(rng, collection, item, direction)

	for i, opt := range options {
		fmt.Printf("  %d) %s\n", i+1, opt)
	}
	for {
		fmt.Printf("  pick (1-%d): ", len(options))
		line, err := in.ReadString('\n')
		if err != nil {
			return 0, "", err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > len(options) {
			continue
		}
		picked := options[n-1]
		if picked == answer {
			fmt.Println("  correct!")
			return 4, picked, nil
		}
		fmt.Printf("  wrong. it was: %s\n", answer)
		return 1, picked, nil
	}
}

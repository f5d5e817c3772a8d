package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"bookrec/catalog"
	"bookrec/config"
	"bookrec/llm/agent"
	"bookrec/llm/providers"
	"bookrec/llm/tools"
	"bookrec/llm/trace"
	"bookrec/repl"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFile string

func init() {
	// Load .env file if exists
	_ = godotenv.Load()

	log.SetFlags(0)
	log.SetPrefix("bookrec: ")
}

func main() {
	v := config.New()

	root := &cobra.Command{
		Use:           "bookrec",
		Short:         "Book recommendation agent",
		Long:          "bookrec recommends a book from the local catalog by genre and describes it with a language model.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(cmd.Context(), v)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "optional config file (json, yaml or toml)")
	flags.String("catalog", config.DefaultCatalogPath, "path to books.json")
	flags.String("genres", config.DefaultGenresPath, "path to the known-genre list")
	flags.String("provider", config.DefaultProvider, "chat model provider: openai, gemini or qwen")
	flags.String("model", "", "model name (provider default when empty)")
	flags.BoolP("verbose", "v", false, "print every agent event")

	bindFlag(v, "catalog_path", root, "catalog")
	bindFlag(v, "genres_path", root, "genres")
	bindFlag(v, "llm.provider", root, "provider")
	bindFlag(v, "llm.model", root, "model")
	bindFlag(v, "verbose", root, "verbose")

	root.AddCommand(fetchCmd(v))

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func bindFlag(v *viper.Viper, key string, cmd *cobra.Command, name string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(name)); err != nil {
		log.Fatalf("failed to bind flag %s: %v", name, err)
	}
}

// runChat loads the catalog, wires the agent and serves the REPL on stdin/stdout.
func runChat(ctx context.Context, v *viper.Viper) error {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	fmt.Println("Fetching books on file.")
	fmt.Println()
	books, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	genres, err := catalog.LoadGenres(cfg.GenresPath)
	if err != nil {
		return err
	}

	closeTrace, err := trace.Setup(ctx, trace.CozeLoopConfig{
		APIToken:    cfg.Trace.CozeLoopAPIToken,
		WorkspaceID: cfg.Trace.CozeLoopWorkspaceID,
	})
	if err != nil {
		return err
	}
	defer closeTrace(ctx)

	chatModel, err := providers.NewChatModel(ctx, &providers.ChatModelConfig{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		BaseURL:  cfg.LLM.BaseURL,
		Model:    cfg.LLM.Model,
	})
	if err != nil {
		return fmt.Errorf("failed to create chat model: %w", err)
	}

	recommender := tools.NewRecommender(books, genres, catalog.RandomPicker{}, tools.NewChatDescriber(chatModel))
	recommendTool, err := tools.GetRecommendBookTool(recommender)
	if err != nil {
		return fmt.Errorf("failed to create recommend tool: %w", err)
	}

	runtime, err := agent.NewRuntime(ctx, &agent.RuntimeConfig{
		ChatModel:     chatModel,
		RecommendTool: recommendTool,
		Verbose:       cfg.Verbose,
	})
	if err != nil {
		return err
	}

	return repl.New(repl.Config{
		In:     os.Stdin,
		Out:    os.Stdout,
		Runner: runtime,
	}).Run(ctx)
}

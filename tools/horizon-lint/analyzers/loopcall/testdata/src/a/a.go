package a

import "context"

type LLMClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Catalog interface {
	GameByID(ctx context.Context, id int64) (string, error)
}

func bad(ctx context.Context, names []string, ids []int64, llm LLMClient, c Catalog) {
	for _, name := range names {
		llm.Complete(ctx, name) // want "Complete called inside loop"
	}
	for i := 0; i < len(ids); i++ {
		c.GameByID(ctx, ids[i]) // want "GameByID called inside loop"
	}
}

func suppressed(ctx context.Context, batches []string, llm LLMClient) {
	for _, batch := range batches {
		//nolint:loopcall // batches run in sequence
		llm.Complete(ctx, batch)
		llm.Complete(ctx, batch) //nolint:loopcall
	}
}

func good(ctx context.Context, names []string, llm LLMClient) {
	for _, name := range names {
		_ = len(name)
		go func() { _, _ = llm.Complete(ctx, name) }()
	}
	_, _ = llm.Complete(ctx, "all at once")
}

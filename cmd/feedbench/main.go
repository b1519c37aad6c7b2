package main

import (
    "context"
    "fmt"
    "math"
    "os"
    "sort"
    "strconv"
    "time"

    "github.com/d60-Lab/microblog/config"
    "github.com/d60-Lab/microblog/internal/model"
    "github.com/d60-Lab/microblog/internal/repository"
    "github.com/d60-Lab/microblog/internal/service"
    "github.com/d60-Lab/microblog/pkg/database"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func pct(vs []time.Duration, p float64) time.Duration {
    if len(vs) == 0 { return 0 }
    xs := append([]time.Duration(nil), vs...)
    sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
    k := int(math.Ceil(p*float64(len(xs)))) - 1
    if k < 0 { k = 0 }
    if k >= len(xs) { k = len(xs)-1 }
    return xs[k]
}

func main() {
    cfg := must(config.Load())
    db := must(database.InitDB(cfg))

    followRepo := repository.NewFollowRepository(db)
    tweetRepo := repository.NewTweetRepository(db)
    feedSvc := service.NewFeedService(tweetRepo, followRepo, cfg.Feed.DefaultLimit, cfg.Feed.MaxLimit)

    // params
    AUTHORS := 200            // followed authors for the reader
    TWEETS := 50              // tweets per author
    READS := 500              // feed reads to measure
    LIMIT := 10               // page size
    if s := os.Getenv("AUTHORS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { AUTHORS = v } }
    if s := os.Getenv("TWEETS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { TWEETS = v } }
    if s := os.Getenv("READS"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { READS = v } }
    if s := os.Getenv("LIMIT"); s != "" { if v, e := strconv.Atoi(s); e == nil && v > 0 { LIMIT = v } }

    ctx := context.Background()

    // seed one reader following AUTHORS users, each with TWEETS tweets
    reader := model.User{Name: "reader", APIKey: "feedbench-reader"}
    _ = db.Where("api_key = ?", reader.APIKey).FirstOrCreate(&reader).Error
    authors := make([]model.User, AUTHORS)
    for i := 0; i < AUTHORS; i++ {
        authors[i] = model.User{Name: fmt.Sprintf("author%04d", i), APIKey: fmt.Sprintf("feedbench-a%04d", i)}
    }
    _ = db.CreateInBatches(&authors, 500).Error
    for i := 0; i < AUTHORS; i++ { _ = followRepo.Create(ctx, reader.ID, authors[i].ID) }
    tweets := make([]model.Tweet, 0, AUTHORS*TWEETS)
    for i := 0; i < AUTHORS; i++ {
        for j := 0; j < TWEETS; j++ {
            tweets = append(tweets, model.Tweet{Content: fmt.Sprintf("tweet %d from author%04d", j, i), UserID: authors[i].ID})
        }
    }
    _ = db.CreateInBatches(&tweets, 500).Error

    // measure first-page reads
    durations := make([]time.Duration, 0, READS)
    for i := 0; i < READS; i++ {
        st := time.Now()
        page, err := feedSvc.Feed(ctx, &reader, LIMIT, 0)
        if err != nil { panic(err) }
        if len(page.Tweets) == 0 { panic("empty feed page") }
        durations = append(durations, time.Since(st))
    }

    var sum time.Duration
    for _, d := range durations { sum += d }
    fmt.Printf("AUTHORS=%d TWEETS=%d READS=%d LIMIT=%d\n", AUTHORS, TWEETS, READS, LIMIT)
    fmt.Printf("Feed read latency: avg=%v p95=%v p99=%v\n", sum/time.Duration(len(durations)), pct(durations, 0.95), pct(durations, 0.99))
}

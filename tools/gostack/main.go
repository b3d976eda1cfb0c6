// Command gostack exercises a stack pool, either from a random
// workload or from a small op-script, and reports pool statistics.
//
//	gostack -n 100000
//	gostack -script ops.txt
//
// Script syntax, one statement per line, `#` starts a comment:
//
//	push <int> <stack>
//	pop <stack>
//	free <stack>
//	dump <stack>
//
// Stacks are named, they come into being on first use.
package main

import "flag"
import "fmt"
import "io/ioutil"
import "math/rand"
import "os"

import "github.com/bnclabs/golog"
import "github.com/bnclabs/gostack"
import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"
import hm "github.com/dustin/go-humanize"

var options struct {
	script   string
	n        int
	nstacks  int
	prealloc int
	seed     int
	loglevel string
}

func argParse() {
	flag.StringVar(&options.script, "script", "",
		"op-script file to run against the pool")
	flag.IntVar(&options.n, "n", 1000000,
		"number of operations for the random workload")
	flag.IntVar(&options.nstacks, "stacks", 16,
		"number of concurrent stacks in the random workload")
	flag.IntVar(&options.prealloc, "prealloc", 0,
		"number of node slots to pre-allocate")
	flag.IntVar(&options.seed, "seed", 42,
		"random seed for the random workload")
	flag.StringVar(&options.loglevel, "log", "info",
		"log level")
	flag.Parse()
}

func main() {
	argParse()
	log.SetLogger(nil, map[string]interface{}{
		"log.level": options.loglevel, "log.file": "",
	})
	gostack.LogComponents("all")

	setts := s.Settings{"prealloc": int64(options.prealloc)}
	pool := gostack.New[int64]("tool", setts)

	if options.script != "" {
		runscript(pool, options.script)
	} else {
		runworkload(pool)
	}

	pool.Log()
	if err := pool.Validate(); err != nil {
		fmt.Printf("validation failed: %v\n", err)
		os.Exit(1)
	}
	tellsysmem()
}

func runworkload(pool *gostack.Pool[int64]) {
	rnd := rand.New(rand.NewSource(int64(options.seed)))
	heads := make([]gostack.Index, options.nstacks)
	var err error
	for i := 0; i < options.n; i++ {
		j := rnd.Intn(len(heads))
		switch {
		case rnd.Intn(100) < 60: // bias towards push
			heads[j], err = pool.Push(int64(i), heads[j])
		case pool.IsEmpty(heads[j]) == false:
			heads[j], err = pool.Pop(heads[j])
		default:
			heads[j], err = pool.Push(int64(i), heads[j])
		}
		if err != nil {
			fmt.Printf("op %v: %v\n", i, err)
			os.Exit(1)
		}
	}
	for j := range heads {
		n, _ := pool.Len(heads[j])
		fmt.Printf("stack %2d: %d nodes\n", j, n)
		if heads[j], err = pool.FreeStack(heads[j]); err != nil {
			fmt.Printf("free %v: %v\n", j, err)
			os.Exit(1)
		}
	}
}

func runscript(pool *gostack.Pool[int64], file string) {
	text, err := ioutil.ReadFile(file)
	if err != nil {
		fmt.Printf("%v\n", err)
		os.Exit(1)
	}
	stmts, err := compile(text)
	if err != nil {
		fmt.Printf("%v: %v\n", file, err)
		os.Exit(1)
	}
	heads := map[string]gostack.Index{}
	for _, stmt := range stmts {
		head := heads[stmt.stack]
		switch stmt.op {
		case "push":
			if head, err = pool.Push(stmt.arg, head); err == nil {
				heads[stmt.stack] = head
			}
		case "pop":
			if head, err = pool.Pop(head); err == nil {
				heads[stmt.stack] = head
			}
		case "free":
			if head, err = pool.FreeStack(head); err == nil {
				heads[stmt.stack] = head
			}
		case "dump":
			fmt.Printf("%v:", stmt.stack)
			err = pool.Each(head, func(v int64) bool {
				fmt.Printf(" %v", v)
				return true
			})
			fmt.Println()
		}
		if err != nil {
			fmt.Printf("%v %v: %v\n", stmt.op, stmt.stack, err)
			os.Exit(1)
		}
	}
}

func tellsysmem() {
	mem := sigar.Mem{}
	mem.Get()
	fmt.Printf("system memory: %v used out of %v\n",
		hm.Bytes(mem.Used), hm.Bytes(mem.Total))
}

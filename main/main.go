package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/streamjson"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	tags := []string{"drama", "comedy", "mystery", "adventure"}
	buf := streamjson.NewBytes(1 << 12)
	for i := 0; i < 10000; i++ {
		buf.Clear()
		ser := streamjson.New(buf)
		obj := ser.Object()
		obj.Field(streamjson.RawKey("seq"), i)
		obj.Field(streamjson.RawKey("title"), "profiling run")
		obj.ComplexField(streamjson.RawKey("tags"), func(v *streamjson.ValueWriter) {
			arr := v.Array()
			for _, tag := range tags {
				arr.Add(tag)
			}
		})
		obj.End()
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}

package sqlinline

const QInsertAdAsset = `--sql 4993f152-2bab-498b-953b-9c9ae077416f
insert into ad_assets(
  id,
  product_id,
  source_image_id,
  asset_type,
  status,
  prompt,
  filename,
  thumbnail_url,
  file_size,
  mime_type,
  created_at
) values (
  $1::uuid,
  nullif($2::text, ''),
  nullif($3::text, ''),
  $4::text,
  'COMPLETED',
  $5::text,
  $6::text,
  nullif($7::text, ''),
  $8::bigint,
  $9::text,
  now()
) returning id;
`

const QInsertUsageEvent = `--sql e2122cab-f88a-490d-9b9f-85acb23f6cf4
insert into usage_events(id, event_type, success, properties, created_at)
values (gen_random_uuid(), $1::text, $2::boolean, $3::jsonb, now());
`
